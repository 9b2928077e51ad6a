package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/trm"

	"github.com/shopspring/decimal"
)

type BasketRepo interface {
	TodaysBasket(ctx context.Context, shopperID int64, day time.Time) (entities.Basket, error)
	GetBasket(ctx context.Context, basketID int64) (entities.Basket, error)
	CreateBasket(ctx context.Context, shopperID int64, day time.Time) (int64, error)

	// BasketOrdered сообщает, оформлен ли уже заказ из корзины
	BasketOrdered(ctx context.Context, basketID int64) (bool, error)

	LineExists(ctx context.Context, basketID, productID int64) (bool, error)
	InsertLine(ctx context.Context, line entities.BasketLine) error
	Lines(ctx context.Context, basketID int64) ([]entities.BasketLine, error)
	LineViews(ctx context.Context, basketID int64) ([]entities.LineView, error)
	Total(ctx context.Context, basketID int64) (decimal.Decimal, error)

	// Удаление и обновление отсутствующих строк не считается ошибкой
	UpdateQuantity(ctx context.Context, basketID, productID int64, quantity int) error
	DeleteLine(ctx context.Context, basketID, productID int64) error
	DeleteLines(ctx context.Context, basketID int64) error
	DeleteBasket(ctx context.Context, shopperID, basketID int64) error
}

type OfferFinder interface {
	FindOffer(ctx context.Context, productID, sellerID int64) (entities.Offer, error)
}

type basketService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      BasketRepo
	offers    OfferFinder
	now       func() time.Time
}

func NewBasketService(logger *slog.Logger, txManager trm.Manager, repo BasketRepo, offers OfferFinder) *basketService {
	return &basketService{
		logger:    logger.With(slog.String("service", "basket")),
		txManager: txManager,
		repo:      repo,
		offers:    offers,
		now:       time.Now,
	}
}

func (s *basketService) today() time.Time {
	return entities.Day(s.now())
}

// ResolveTodaysBasket возвращает корзину покупателя за сегодня, ok == false если ее нет.
func (s *basketService) ResolveTodaysBasket(ctx context.Context, shopperID int64) (int64, bool, error) {
	basket, err := s.repo.TodaysBasket(ctx, shopperID, s.today())
	if errors.Is(err, entities.ErrBasketNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, entities.AsPersistence(err)
	}
	return basket.ID, true, nil
}

// AddLine добавляет строку в корзину. Если line.BasketID == 0, корзина на сегодня
// создается (или переиспользуется) в той же транзакции, что и вставка строки.
// В корзину, из которой уже оформлен заказ, добавлять нельзя.
func (s *basketService) AddLine(ctx context.Context, line entities.NewLine) (int64, error) {
	if err := line.Validate(); err != nil {
		return 0, err
	}

	basketID := line.BasketID
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if basketID == 0 {
			id, err := s.todaysOrNewBasket(ctx, line.ShopperID)
			if err != nil {
				return err
			}
			basketID = id
		}
		if err := s.checkOwner(ctx, line.ShopperID, basketID); err != nil {
			return err
		}
		if err := s.ensureOpen(ctx, basketID); err != nil {
			return err
		}

		exists, err := s.repo.LineExists(ctx, basketID, line.ProductID)
		if err != nil {
			return err
		}
		if exists {
			return entities.ErrDuplicateLine
		}

		return s.repo.InsertLine(ctx, entities.BasketLine{
			BasketID:  basketID,
			ProductID: line.ProductID,
			SellerID:  line.SellerID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	})
	if err != nil {
		return 0, entities.AsPersistence(err)
	}

	s.logger.Debug("basket line added",
		slog.Int64("basket_id", basketID),
		slog.Int64("product_id", line.ProductID),
		slog.Int("quantity", line.Quantity),
	)
	return basketID, nil
}

func (s *basketService) todaysOrNewBasket(ctx context.Context, shopperID int64) (int64, error) {
	basket, err := s.repo.TodaysBasket(ctx, shopperID, s.today())
	if err == nil {
		return basket.ID, nil
	}
	if !errors.Is(err, entities.ErrBasketNotFound) {
		return 0, err
	}

	id, err := s.repo.CreateBasket(ctx, shopperID, s.today())
	if err != nil {
		return 0, err
	}
	s.logger.Debug("basket created", slog.Int64("basket_id", id), slog.Int64("shopper_id", shopperID))
	return id, nil
}

func (s *basketService) checkOwner(ctx context.Context, shopperID, basketID int64) error {
	basket, err := s.repo.GetBasket(ctx, basketID)
	if err != nil {
		return err
	}
	if basket.ShopperID != shopperID {
		return entities.ErrBasketNotFound
	}
	return nil
}

// ensureOpen возвращает ErrBasketOrdered, если из корзины уже оформлен заказ.
// Корзина к этому моменту должна быть заблокирована через GetBasket.
func (s *basketService) ensureOpen(ctx context.Context, basketID int64) error {
	ordered, err := s.repo.BasketOrdered(ctx, basketID)
	if err != nil {
		return err
	}
	if ordered {
		return entities.ErrBasketOrdered
	}
	return nil
}

// lockOpenBasket блокирует корзину и проверяет, что она еще открыта.
// ok == false, если корзины нет.
func (s *basketService) lockOpenBasket(ctx context.Context, basketID int64) (ok bool, err error) {
	_, err = s.repo.GetBasket(ctx, basketID)
	if errors.Is(err, entities.ErrBasketNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.ensureOpen(ctx, basketID)
}

func (s *basketService) Basket(ctx context.Context, basketID int64) (entities.Basket, error) {
	basket, err := s.repo.GetBasket(ctx, basketID)
	if err != nil {
		return entities.Basket{}, entities.AsPersistence(err)
	}
	return basket, nil
}

func (s *basketService) Lines(ctx context.Context, basketID int64) ([]entities.BasketLine, error) {
	lines, err := s.repo.Lines(ctx, basketID)
	if err != nil {
		return nil, entities.AsPersistence(err)
	}
	return lines, nil
}

func (s *basketService) ListLines(ctx context.Context, basketID int64) ([]entities.LineView, error) {
	views, err := s.repo.LineViews(ctx, basketID)
	if err != nil {
		return nil, entities.AsPersistence(err)
	}
	if views == nil {
		views = []entities.LineView{}
	}
	return views, nil
}

// Total возвращает ноль для пустой или несуществующей корзины.
func (s *basketService) Total(ctx context.Context, basketID int64) (decimal.Decimal, error) {
	total, err := s.repo.Total(ctx, basketID)
	if err != nil {
		return decimal.Zero, entities.AsPersistence(err)
	}
	return total, nil
}

func (s *basketService) UpdateQuantity(ctx context.Context, basketID, productID int64, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if ok, err := s.lockOpenBasket(ctx, basketID); !ok || err != nil {
			return err
		}
		return s.repo.UpdateQuantity(ctx, basketID, productID, quantity)
	})
	return entities.AsPersistence(err)
}

func (s *basketService) DeleteLine(ctx context.Context, basketID, productID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if ok, err := s.lockOpenBasket(ctx, basketID); !ok || err != nil {
			return err
		}
		return s.repo.DeleteLine(ctx, basketID, productID)
	})
	return entities.AsPersistence(err)
}

func (s *basketService) ClearLines(ctx context.Context, basketID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteLines(ctx, basketID)
	})
	return entities.AsPersistence(err)
}

// DeleteBasket удаляет строку корзины. Корзина должна быть пустой.
func (s *basketService) DeleteBasket(ctx context.Context, shopperID, basketID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.DeleteBasket(ctx, shopperID, basketID)
	})
	return entities.AsPersistence(err)
}

// TodaysBasket собирает содержимое и сумму сегодняшней корзины одной транзакцией.
func (s *basketService) TodaysBasket(ctx context.Context, shopperID int64) (entities.BasketView, error) {
	view := entities.BasketView{Lines: []entities.LineView{}, Total: decimal.Zero}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		basketID, ok, err := s.ResolveTodaysBasket(ctx, shopperID)
		if err != nil || !ok {
			return err
		}
		if _, err := s.repo.GetBasket(ctx, basketID); err != nil {
			return err
		}

		lines, err := s.ListLines(ctx, basketID)
		if err != nil {
			return err
		}
		total, err := s.Total(ctx, basketID)
		if err != nil {
			return err
		}
		view = entities.BasketView{BasketID: basketID, Lines: lines, Total: total}
		return nil
	})
	if err != nil {
		return entities.BasketView{}, entities.AsPersistence(err)
	}
	return view, nil
}

// AddProduct кладет товар в сегодняшнюю корзину по текущей цене продавца.
func (s *basketService) AddProduct(ctx context.Context, shopperID, productID, sellerID int64, quantity int) (int64, error) {
	if quantity <= 0 {
		return 0, entities.ErrInvalidQuantity
	}

	offer, err := s.offers.FindOffer(ctx, productID, sellerID)
	if err != nil {
		return 0, err
	}

	// корзина на сегодня находится или создается внутри транзакции AddLine
	return s.AddLine(ctx, entities.NewLine{
		ShopperID: shopperID,
		SellerID:  offer.SellerID,
		ProductID: offer.ProductID,
		Quantity:  quantity,
		UnitPrice: offer.Price,
	})
}

func (s *basketService) ChangeQuantity(ctx context.Context, shopperID, productID int64, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}

	basketID, ok, err := s.ResolveTodaysBasket(ctx, shopperID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrLineNotFound
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkOwner(ctx, shopperID, basketID); err != nil {
			return err
		}
		if err := s.ensureOpen(ctx, basketID); err != nil {
			return err
		}
		if err := s.requireLine(ctx, basketID, productID); err != nil {
			return err
		}
		return s.repo.UpdateQuantity(ctx, basketID, productID, quantity)
	})
	return entities.AsPersistence(err)
}

// RemoveItem удаляет товар из сегодняшней корзины, а вместе с последним товаром и саму корзину.
func (s *basketService) RemoveItem(ctx context.Context, shopperID, productID int64) (closed bool, err error) {
	basketID, ok, err := s.ResolveTodaysBasket(ctx, shopperID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, entities.ErrLineNotFound
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkOwner(ctx, shopperID, basketID); err != nil {
			return err
		}
		if err := s.ensureOpen(ctx, basketID); err != nil {
			return err
		}
		if err := s.requireLine(ctx, basketID, productID); err != nil {
			return err
		}
		if err := s.repo.DeleteLine(ctx, basketID, productID); err != nil {
			return err
		}

		rest, err := s.repo.Lines(ctx, basketID)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return nil
		}
		closed = true
		return s.repo.DeleteBasket(ctx, shopperID, basketID)
	})
	if err != nil {
		return false, entities.AsPersistence(err)
	}
	return closed, nil
}

// EmptyBasket удаляет все строки сегодняшней корзины и ее саму.
func (s *basketService) EmptyBasket(ctx context.Context, shopperID int64) error {
	basketID, ok, err := s.ResolveTodaysBasket(ctx, shopperID)
	if err != nil || !ok {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ClearLines(ctx, basketID); err != nil {
			return err
		}
		return s.DeleteBasket(ctx, shopperID, basketID)
	})
	return entities.AsPersistence(err)
}

func (s *basketService) requireLine(ctx context.Context, basketID, productID int64) error {
	exists, err := s.repo.LineExists(ctx, basketID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrLineNotFound
	}
	return nil
}
