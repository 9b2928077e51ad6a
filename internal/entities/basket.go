package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Basket struct {
	ID        int64
	ShopperID int64
	CreatedOn time.Time
	CreatedAt time.Time
}

// BasketLine хранит цену, зафиксированную в момент добавления товара.
type BasketLine struct {
	BasketID  int64
	ProductID int64
	SellerID  int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l BasketLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewLine описывает добавление товара. BasketID == 0 означает, что корзины на сегодня еще нет.
type NewLine struct {
	ShopperID int64
	BasketID  int64
	SellerID  int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l NewLine) Validate() error {
	if l.ShopperID <= 0 || l.ProductID <= 0 || l.SellerID <= 0 || l.BasketID < 0 {
		return ErrInvalidID
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !l.UnitPrice.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

type LineView struct {
	Index              int
	ProductID          int64
	ProductDescription string
	SellerName         string
	Quantity           int
	UnitPrice          decimal.Decimal
	Total              decimal.Decimal
}

// BasketView is today's basket as shown to the shopper. BasketID is 0 when there is no basket.
type BasketView struct {
	BasketID int64
	Lines    []LineView
	Total    decimal.Decimal
}

func (v BasketView) Empty() bool {
	return len(v.Lines) == 0
}

// Day returns the calendar day of t at midnight in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
