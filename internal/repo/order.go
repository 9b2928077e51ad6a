package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{"order_id", "shopper_id", "basket_id", "order_date", "order_status"}

// CreateOrder вставляет заголовок заказа и возвращает выданный базой идентификатор.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query, args := r.qb.Insert("shopper_orders").
		Columns("shopper_id", "basket_id", "order_date", "order_status").
		Values(o.ShopperID, o.BasketID, o.Date.Format(time.DateOnly), o.Status).
		Suffix("RETURNING order_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) CreateOrderLines(ctx context.Context, orderID int64, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("ordered_products").
		Columns("order_id", "product_id", "seller_id", "quantity", "price", "ordered_product_status")

	for _, l := range lines {
		q = q.Values(orderID, l.ProductID, l.SellerID, l.Quantity, l.UnitPrice, l.Status)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create order lines: %w", err)
	}
	return nil
}

// OrderByBasket ищет заказ, уже оформленный из корзины basketID.
func (r *postgresRepo) OrderByBasket(ctx context.Context, basketID int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"basket_id": basketID})
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("shopper_orders").
		Where(where).
		MustSql()

	var order ShopperOrder
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	products, err := r.orderedProducts(ctx, order.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, products), nil
}

// ShopperOrders возвращает историю заказов покупателя, новые первыми.
func (r *postgresRepo) ShopperOrders(ctx context.Context, shopperID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("shopper_orders").
		Where(sq.Eq{"shopper_id": shopperID}).
		OrderBy("order_date DESC", "order_id DESC").
		MustSql()

	return r.ordersWithLines(ctx, query, args)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("shopper_orders").
		OrderBy("order_id DESC").
		Limit(uint64(count)).
		MustSql()

	return r.ordersWithLines(ctx, query, args)
}

func (r *postgresRepo) ordersWithLines(ctx context.Context, query string, args []any) ([]entities.Order, error) {
	var orders []ShopperOrder
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	products, err := r.orderedProducts(ctx, ids...)
	if err != nil {
		return nil, err
	}
	productsMap := make(map[int64][]OrderedProduct, len(orders))
	for _, p := range products {
		productsMap[p.OrderID] = append(productsMap[p.OrderID], p)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, productsMap[order.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) orderedProducts(ctx context.Context, orderIDs ...int64) ([]OrderedProduct, error) {
	query, args := r.qb.Select(
		"op.ordered_product_id", "op.order_id", "op.product_id", "p.product_description",
		"op.seller_id", "s.seller_name", "op.quantity", "op.price", "op.ordered_product_status").
		From("ordered_products op").
		Join("products p ON p.product_id = op.product_id").
		Join("sellers s ON s.seller_id = op.seller_id").
		Where(sq.Eq{"op.order_id": orderIDs}).
		OrderBy("op.order_id", "op.ordered_product_id").
		MustSql()

	var products []OrderedProduct
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select ordered products: %w", err)
	}
	return products, nil
}
