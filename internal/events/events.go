package events

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	"github.com/google/uuid"
)

const OrderPlacedType = "order.placed"

type OrderPlaced struct {
	EventID    string            `json:"event_id"`
	OrderID    int64             `json:"order_id"`
	ShopperID  int64             `json:"shopper_id"`
	BasketID   int64             `json:"basket_id"`
	OrderDate  string            `json:"order_date"`
	Status     string            `json:"status"`
	Total      string            `json:"total"`
	Lines      []OrderPlacedLine `json:"lines"`
	OccurredAt time.Time         `json:"occurred_at"`
}

type OrderPlacedLine struct {
	ProductID int64  `json:"product_id"`
	SellerID  int64  `json:"seller_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func NewOrderPlaced(order entities.Order, now time.Time) OrderPlaced {
	lines := make([]OrderPlacedLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderPlacedLine{
			ProductID: l.ProductID,
			SellerID:  l.SellerID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
		})
	}

	return OrderPlaced{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		ShopperID:  order.ShopperID,
		BasketID:   order.BasketID,
		OrderDate:  order.Date.Format(time.DateOnly),
		Status:     order.Status,
		Total:      order.Total().StringFixed(2),
		Lines:      lines,
		OccurredAt: now.UTC(),
	}
}

// NopPublisher используется, когда Kafka отключена.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, entities.Order) error {
	return nil
}
