package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/trm"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"
)

type BasketStore interface {
	ResolveTodaysBasket(ctx context.Context, shopperID int64) (int64, bool, error)
	Basket(ctx context.Context, basketID int64) (entities.Basket, error)
	Lines(ctx context.Context, basketID int64) ([]entities.BasketLine, error)
	ClearLines(ctx context.Context, basketID int64) error
	DeleteBasket(ctx context.Context, shopperID, basketID int64) error
}

type OrderWriter interface {
	OrderByBasket(ctx context.Context, basketID int64) (entities.Order, error)
	CreateOrder(ctx context.Context, o entities.Order) (int64, error)
	CreateOrderLines(ctx context.Context, orderID int64, lines []entities.OrderLine) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order entities.Order) error
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	baskets   BasketStore
	orders    OrderWriter
	publisher OrderPublisher
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	baskets BasketStore,
	orders OrderWriter,
	publisher OrderPublisher,
	retry utils.RetryConfig,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		baskets:   baskets,
		orders:    orders,
		publisher: publisher,
		retry:     retry,
		now:       time.Now,
	}
}

// Checkout превращает корзину в заказ.
//
// Заказ и его строки фиксируются одной транзакцией, и только после этого корзина
// очищается и удаляется. Если очистка не удалась, повторный Checkout той же корзины
// найдет уже созданный заказ по basket_id и просто завершит очистку.
func (s *checkoutService) Checkout(ctx context.Context, shopperID, basketID int64) (int64, error) {
	if shopperID <= 0 || basketID <= 0 {
		return 0, entities.ErrInvalidID
	}

	order, err := s.placeOrder(ctx, shopperID, basketID)
	if err != nil {
		return 0, entities.AsPersistence(err)
	}

	clearBasket := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.baskets.ClearLines(ctx, basketID); err != nil {
				return err
			}
			return s.baskets.DeleteBasket(ctx, shopperID, basketID)
		})
	}
	if err := utils.Retry(ctx, s.retry, clearBasket); err != nil {
		s.logger.Error("failed to clear basket after checkout",
			slog.Int64("order_id", order.ID),
			slog.Int64("basket_id", basketID),
			slog.Any("error", err),
		)
		return 0, entities.AsPersistence(fmt.Errorf("failed to clear basket: %w", err))
	}

	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.Warn("failed to publish order placed event", slog.Int64("order_id", order.ID), slog.Any("error", err))
	}

	s.logger.Info("order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("shopper_id", shopperID),
		slog.Int("lines", len(order.Lines)),
	)
	return order.ID, nil
}

// CheckoutToday оформляет сегодняшнюю корзину покупателя.
func (s *checkoutService) CheckoutToday(ctx context.Context, shopperID int64) (int64, error) {
	basketID, ok, err := s.baskets.ResolveTodaysBasket(ctx, shopperID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, entities.ErrEmptyBasket
	}
	return s.Checkout(ctx, shopperID, basketID)
}

func (s *checkoutService) placeOrder(ctx context.Context, shopperID, basketID int64) (entities.Order, error) {
	var order entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// блокировка корзины упорядочивает оформление с изменениями ее строк
		basket, err := s.baskets.Basket(ctx, basketID)
		if err != nil && !errors.Is(err, entities.ErrBasketNotFound) {
			return err
		}
		found := err == nil

		existing, err := s.orders.OrderByBasket(ctx, basketID)
		if err == nil {
			if existing.ShopperID != shopperID {
				return entities.ErrBasketNotFound
			}
			s.logger.Warn("basket already ordered, finishing checkout",
				slog.Int64("order_id", existing.ID),
				slog.Int64("basket_id", basketID),
			)
			order = existing
			return nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return fmt.Errorf("failed to find order by basket: %w", err)
		}

		if !found || basket.ShopperID != shopperID {
			return entities.ErrBasketNotFound
		}

		order = entities.Order{
			ShopperID: shopperID,
			BasketID:  basketID,
			Date:      entities.Day(s.now()),
			Status:    entities.StatusPlaced,
		}
		order.ID, err = s.orders.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		lines, err := s.baskets.Lines(ctx, basketID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return entities.ErrEmptyBasket
		}

		order.Lines = entities.OrderLinesFromBasket(order.ID, lines)
		if err := s.orders.CreateOrderLines(ctx, order.ID, order.Lines); err != nil {
			return fmt.Errorf("failed to create order lines: %w", err)
		}
		return nil
	})

	return order, err
}
