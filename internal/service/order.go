package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ShopperOrders(ctx context.Context, shopperID int64) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

// Заказы неизменяемы, поэтому их можно кешировать без инвалидации
type Cache interface {
	Get(key int64) ([]byte, bool)
	Set(key int64, value []byte)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
	}
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var cached entities.Order
		err := cached.Unmarshal(data)
		if err == nil {
			return cached, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.Int64("order_id", orderID), slog.Any("error", err))
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, entities.AsPersistence(err)
	}

	s.store(order)
	return order, nil
}

func (s *orderService) OrderHistory(ctx context.Context, shopperID int64) ([]entities.Order, error) {
	orders, err := s.repo.ShopperOrders(ctx, shopperID)
	if err != nil {
		return nil, entities.AsPersistence(err)
	}
	return orders, nil
}

// WarmUpCache загружает в кеш последние count заказов.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return entities.AsPersistence(err)
	}
	for _, order := range orders {
		s.store(order)
	}
	s.logger.Info("order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) store(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Int64("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
