package handler

import (
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
)

// AddItemRequest товар, который нужно положить в корзину
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	SellerID  int64 `json:"seller_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// ChangeQuantityRequest новое количество товара
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type AddItemResponse struct {
	BasketID int64 `json:"basket_id"`
}

type RemoveItemResponse struct {
	BasketClosed bool `json:"basket_closed"`
}

type CheckoutResponse struct {
	OrderID int64 `json:"order_id"`
}

type ShopperResponse struct {
	ShopperID int64 `json:"shopper_id"`
}

// BasketLine строка корзины
type BasketLine struct {
	Index              int    `json:"index"`
	ProductID          int64  `json:"product_id"`
	ProductDescription string `json:"product_description"`
	SellerName         string `json:"seller_name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          string `json:"unit_price"`
	Total              string `json:"total"`
}

// Basket сегодняшняя корзина покупателя
type Basket struct {
	BasketID int64        `json:"basket_id,omitempty"`
	Lines    []BasketLine `json:"lines"`
	Total    string       `json:"total"`
}

// Order оформленный заказ
type Order struct {
	OrderID   int64       `json:"order_id"`
	ShopperID int64       `json:"shopper_id"`
	OrderDate string      `json:"order_date"`
	Status    string      `json:"status"`
	Total     string      `json:"total"`
	Lines     []OrderLine `json:"lines"`
}

type OrderLine struct {
	ProductID          int64  `json:"product_id"`
	ProductDescription string `json:"product_description"`
	SellerID           int64  `json:"seller_id"`
	SellerName         string `json:"seller_name"`
	Quantity           int    `json:"quantity"`
	UnitPrice          string `json:"unit_price"`
	Total              string `json:"total"`
	Status             string `json:"status"`
}

type Category struct {
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description"`
}

type Product struct {
	ProductID   int64  `json:"product_id"`
	Description string `json:"description"`
}

type Seller struct {
	SellerID   int64  `json:"seller_id"`
	SellerName string `json:"seller_name"`
	Price      string `json:"price"`
}

func BasketEntityToJSON(v entities.BasketView) Basket {
	lines := make([]BasketLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, BasketLine{
			Index:              l.Index,
			ProductID:          l.ProductID,
			ProductDescription: l.ProductDescription,
			SellerName:         l.SellerName,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice.StringFixed(2),
			Total:              l.Total.StringFixed(2),
		})
	}
	return Basket{
		BasketID: v.BasketID,
		Lines:    lines,
		Total:    v.Total.StringFixed(2),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ProductID:          l.ProductID,
			ProductDescription: l.ProductDescription,
			SellerID:           l.SellerID,
			SellerName:         l.SellerName,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice.StringFixed(2),
			Total:              l.Total().StringFixed(2),
			Status:             l.Status,
		})
	}
	return Order{
		OrderID:   o.ID,
		ShopperID: o.ShopperID,
		OrderDate: o.Date.Format(time.DateOnly),
		Status:    o.Status,
		Total:     o.Total().StringFixed(2),
		Lines:     lines,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func CategoriesEntityToJSON(categories []entities.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category{CategoryID: c.ID, Description: c.Description})
	}
	return out
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, Product{ProductID: p.ID, Description: p.Description})
	}
	return out
}

func OffersEntityToJSON(offers []entities.Offer) []Seller {
	out := make([]Seller, 0, len(offers))
	for _, o := range offers {
		out = append(out, Seller{SellerID: o.SellerID, SellerName: o.SellerName, Price: o.Price.StringFixed(2)})
	}
	return out
}
