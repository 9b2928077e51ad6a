package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
)

type CatalogRepo interface {
	GetShopper(ctx context.Context, shopperID int64) (entities.Shopper, error)
	Categories(ctx context.Context) ([]entities.Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]entities.Product, error)
	ProductOffers(ctx context.Context, productID int64) ([]entities.Offer, error)
	GetOffer(ctx context.Context, productID, sellerID int64) (entities.Offer, error)
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

func (s *catalogService) ValidateShopper(ctx context.Context, shopperID int64) (int64, error) {
	if shopperID <= 0 {
		return 0, entities.ErrInvalidID
	}
	shopper, err := s.repo.GetShopper(ctx, shopperID)
	if err != nil {
		s.logger.Debug("shopper validation failed", slog.Int64("shopper_id", shopperID), slog.Any("error", err))
		return 0, entities.AsPersistence(err)
	}
	return shopper.ID, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]entities.Category, error) {
	categories, err := s.repo.Categories(ctx)
	return categories, entities.AsPersistence(err)
}

func (s *catalogService) CategoryProducts(ctx context.Context, categoryID int64) ([]entities.Product, error) {
	products, err := s.repo.CategoryProducts(ctx, categoryID)
	return products, entities.AsPersistence(err)
}

func (s *catalogService) ProductSellers(ctx context.Context, productID int64) ([]entities.Offer, error) {
	offers, err := s.repo.ProductOffers(ctx, productID)
	return offers, entities.AsPersistence(err)
}

func (s *catalogService) FindOffer(ctx context.Context, productID, sellerID int64) (entities.Offer, error) {
	if productID <= 0 || sellerID <= 0 {
		return entities.Offer{}, entities.ErrInvalidID
	}
	offer, err := s.repo.GetOffer(ctx, productID, sellerID)
	if err != nil {
		return entities.Offer{}, entities.AsPersistence(err)
	}
	return offer, nil
}
