package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

const StatusPlaced = "Placed"

type Order struct {
	ID        int64
	ShopperID int64
	BasketID  int64
	Date      time.Time
	Status    string

	Lines []OrderLine
}

type OrderLine struct {
	ID                 int64
	OrderID            int64
	ProductID          int64
	ProductDescription string
	SellerID           int64
	SellerName         string
	Quantity           int
	UnitPrice          decimal.Decimal
	Status             string
}

func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Total())
	}
	return total
}

// OrderLinesFromBasket копирует строки корзины в строки заказа без изменений.
func OrderLinesFromBasket(orderID int64, lines []BasketLine) []OrderLine {
	out := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLine{
			OrderID:   orderID,
			ProductID: l.ProductID,
			SellerID:  l.SellerID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Status:    StatusPlaced,
		})
	}
	return out
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
}
