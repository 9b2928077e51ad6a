package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetShopper(ctx context.Context, shopperID int64) (entities.Shopper, error) {
	query, args := r.qb.Select("shopper_id", "shopper_first_name", "shopper_surname", "shopper_email").
		From("shoppers").
		Where(sq.Eq{"shopper_id": shopperID}).
		MustSql()

	var shopper Shopper
	err := r.getContext(ctx, &shopper, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shopper{}, entities.ErrShopperNotFound
	}
	if err != nil {
		return entities.Shopper{}, fmt.Errorf("failed to get shopper: %w", err)
	}
	return ShopperToEntity(shopper), nil
}

func (r *postgresRepo) Categories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select("category_id", "category_description").
		From("categories").
		OrderBy("category_id").
		MustSql()

	var rows []Category
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	categories := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		categories = append(categories, entities.Category{ID: c.CategoryID, Description: c.Description})
	}
	return categories, nil
}

func (r *postgresRepo) CategoryProducts(ctx context.Context, categoryID int64) ([]entities.Product, error) {
	query, args := r.qb.Select("product_id", "category_id", "product_description").
		From("products").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("product_id").
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, entities.Product{
			ID:          p.ProductID,
			CategoryID:  p.CategoryID,
			Description: p.Description,
		})
	}
	return products, nil
}

func (r *postgresRepo) ProductOffers(ctx context.Context, productID int64) ([]entities.Offer, error) {
	query, args := r.offersQuery().
		Where(sq.Eq{"ps.product_id": productID}).
		OrderBy("ps.price", "s.seller_id").
		MustSql()

	var rows []ProductSeller
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product sellers: %w", err)
	}

	offers := make([]entities.Offer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, ProductSellerToEntity(row))
	}
	return offers, nil
}

func (r *postgresRepo) GetOffer(ctx context.Context, productID, sellerID int64) (entities.Offer, error) {
	query, args := r.offersQuery().
		Where(sq.Eq{"ps.product_id": productID, "ps.seller_id": sellerID}).
		MustSql()

	var row ProductSeller
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Offer{}, entities.ErrOfferNotFound
	}
	if err != nil {
		return entities.Offer{}, fmt.Errorf("failed to get offer: %w", err)
	}
	return ProductSellerToEntity(row), nil
}

func (r *postgresRepo) offersQuery() sq.SelectBuilder {
	return r.qb.Select("ps.product_id", "ps.seller_id", "s.seller_name", "ps.price").
		From("product_sellers ps").
		Join("sellers s ON s.seller_id = ps.seller_id")
}
