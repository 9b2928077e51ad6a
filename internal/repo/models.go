package repo

import (
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	"github.com/shopspring/decimal"
)

type Basket struct {
	BasketID  int64     `db:"basket_id"`
	ShopperID int64     `db:"shopper_id"`
	CreatedOn time.Time `db:"basket_created_date"`
	CreatedAt time.Time `db:"basket_created_date_time"`
}

type BasketContent struct {
	BasketID  int64           `db:"basket_id"`
	ProductID int64           `db:"product_id"`
	SellerID  int64           `db:"seller_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type BasketContentView struct {
	ProductID          int64           `db:"product_id"`
	ProductDescription string          `db:"product_description"`
	SellerName         string          `db:"seller_name"`
	Quantity           int             `db:"quantity"`
	Price              decimal.Decimal `db:"price"`
}

type ShopperOrder struct {
	OrderID   int64     `db:"order_id"`
	ShopperID int64     `db:"shopper_id"`
	BasketID  int64     `db:"basket_id"`
	OrderDate time.Time `db:"order_date"`
	Status    string    `db:"order_status"`
}

type OrderedProduct struct {
	OrderedProductID   int64           `db:"ordered_product_id"`
	OrderID            int64           `db:"order_id"`
	ProductID          int64           `db:"product_id"`
	ProductDescription string          `db:"product_description"`
	SellerID           int64           `db:"seller_id"`
	SellerName         string          `db:"seller_name"`
	Quantity           int             `db:"quantity"`
	Price              decimal.Decimal `db:"price"`
	Status             string          `db:"ordered_product_status"`
}

type Shopper struct {
	ShopperID int64  `db:"shopper_id"`
	FirstName string `db:"shopper_first_name"`
	Surname   string `db:"shopper_surname"`
	Email     string `db:"shopper_email"`
}

type Category struct {
	CategoryID  int64  `db:"category_id"`
	Description string `db:"category_description"`
}

type Product struct {
	ProductID   int64  `db:"product_id"`
	CategoryID  int64  `db:"category_id"`
	Description string `db:"product_description"`
}

type ProductSeller struct {
	ProductID  int64           `db:"product_id"`
	SellerID   int64           `db:"seller_id"`
	SellerName string          `db:"seller_name"`
	Price      decimal.Decimal `db:"price"`
}

func BasketToEntity(b Basket) entities.Basket {
	return entities.Basket{
		ID:        b.BasketID,
		ShopperID: b.ShopperID,
		CreatedOn: b.CreatedOn,
		CreatedAt: b.CreatedAt,
	}
}

func BasketContentToEntity(c BasketContent) entities.BasketLine {
	return entities.BasketLine{
		BasketID:  c.BasketID,
		ProductID: c.ProductID,
		SellerID:  c.SellerID,
		Quantity:  c.Quantity,
		UnitPrice: c.Price,
	}
}

// LineViewsToEntity нумерует строки с единицы в порядке выборки.
func LineViewsToEntity(rows []BasketContentView) []entities.LineView {
	views := make([]entities.LineView, 0, len(rows))
	for i, row := range rows {
		views = append(views, entities.LineView{
			Index:              i + 1,
			ProductID:          row.ProductID,
			ProductDescription: row.ProductDescription,
			SellerName:         row.SellerName,
			Quantity:           row.Quantity,
			UnitPrice:          row.Price,
			Total:              row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))),
		})
	}
	return views
}

func OrderedProductToEntity(p OrderedProduct) entities.OrderLine {
	return entities.OrderLine{
		ID:                 p.OrderedProductID,
		OrderID:            p.OrderID,
		ProductID:          p.ProductID,
		ProductDescription: p.ProductDescription,
		SellerID:           p.SellerID,
		SellerName:         p.SellerName,
		Quantity:           p.Quantity,
		UnitPrice:          p.Price,
		Status:             p.Status,
	}
}

func OrderToEntity(o ShopperOrder, products []OrderedProduct) entities.Order {
	order := entities.Order{
		ID:        o.OrderID,
		ShopperID: o.ShopperID,
		BasketID:  o.BasketID,
		Date:      o.OrderDate,
		Status:    o.Status,
	}

	if len(products) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(products))
		for _, p := range products {
			order.Lines = append(order.Lines, OrderedProductToEntity(p))
		}
	}

	return order
}

func ShopperToEntity(s Shopper) entities.Shopper {
	return entities.Shopper{
		ID:        s.ShopperID,
		FirstName: s.FirstName,
		Surname:   s.Surname,
		Email:     s.Email,
	}
}

func ProductSellerToEntity(ps ProductSeller) entities.Offer {
	return entities.Offer{
		ProductID:  ps.ProductID,
		SellerID:   ps.SellerID,
		SellerName: ps.SellerName,
		Price:      ps.Price,
	}
}
