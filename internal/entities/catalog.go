package entities

import "github.com/shopspring/decimal"

type Shopper struct {
	ID        int64
	FirstName string
	Surname   string
	Email     string
}

type Category struct {
	ID          int64
	Description string
}

type Product struct {
	ID          int64
	CategoryID  int64
	Description string
}

// Offer is a seller's current price for a product.
type Offer struct {
	ProductID  int64
	SellerID   int64
	SellerName string
	Price      decimal.Decimal
}
