package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var basketColumns = []string{"basket_id", "shopper_id", "basket_created_date", "basket_created_date_time"}

// TodaysBasket возвращает самую свежую корзину покупателя за день day.
func (r *postgresRepo) TodaysBasket(ctx context.Context, shopperID int64, day time.Time) (entities.Basket, error) {
	query, args := r.qb.Select(basketColumns...).
		From("shopper_baskets").
		Where(sq.Eq{
			"shopper_id":          shopperID,
			"basket_created_date": day.Format(time.DateOnly),
		}).
		OrderBy("basket_created_date_time DESC", "basket_id DESC").
		Limit(1).
		MustSql()

	var basket Basket
	err := r.getContext(ctx, &basket, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Basket{}, entities.ErrBasketNotFound
	}
	if err != nil {
		return entities.Basket{}, fmt.Errorf("failed to get todays basket: %w", err)
	}
	return BasketToEntity(basket), nil
}

// GetBasket внутри транзакции блокирует строку корзины до ее завершения.
func (r *postgresRepo) GetBasket(ctx context.Context, basketID int64) (entities.Basket, error) {
	query, args := r.qb.Select(basketColumns...).
		From("shopper_baskets").
		Where(sq.Eq{"basket_id": basketID}).
		Suffix("FOR UPDATE").
		MustSql()

	var basket Basket
	err := r.getContext(ctx, &basket, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Basket{}, entities.ErrBasketNotFound
	}
	if err != nil {
		return entities.Basket{}, fmt.Errorf("failed to get basket: %w", err)
	}
	return BasketToEntity(basket), nil
}

// CreateBasket вставляет корзину, идентификатор выдает identity-колонка.
func (r *postgresRepo) CreateBasket(ctx context.Context, shopperID int64, day time.Time) (int64, error) {
	query, args := r.qb.Insert("shopper_baskets").
		Columns("shopper_id", "basket_created_date").
		Values(shopperID, day.Format(time.DateOnly)).
		Suffix("RETURNING basket_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create basket: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) LineExists(ctx context.Context, basketID, productID int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("basket_contents").
		Where(sq.Eq{"basket_id": basketID, "product_id": productID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check basket line: %w", err)
	}
	return exists, nil
}

// BasketOrdered сообщает, оформлен ли уже заказ из корзины.
func (r *postgresRepo) BasketOrdered(ctx context.Context, basketID int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("shopper_orders").
		Where(sq.Eq{"basket_id": basketID}).
		Suffix(")").
		MustSql()

	var ordered bool
	if err := r.getContext(ctx, &ordered, query, args...); err != nil {
		return false, fmt.Errorf("failed to check basket order: %w", err)
	}
	return ordered, nil
}

func (r *postgresRepo) InsertLine(ctx context.Context, line entities.BasketLine) error {
	query, args := r.qb.Insert("basket_contents").
		Columns("basket_id", "product_id", "seller_id", "quantity", "price").
		Values(line.BasketID, line.ProductID, line.SellerID, line.Quantity, line.UnitPrice).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrDuplicateLine
	}
	if err != nil {
		return fmt.Errorf("failed to insert basket line: %w", err)
	}
	return nil
}

func (r *postgresRepo) Lines(ctx context.Context, basketID int64) ([]entities.BasketLine, error) {
	query, args := r.qb.Select("basket_id", "product_id", "seller_id", "quantity", "price").
		From("basket_contents").
		Where(sq.Eq{"basket_id": basketID}).
		OrderBy("product_id").
		MustSql()

	var rows []BasketContent
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select basket lines: %w", err)
	}

	lines := make([]entities.BasketLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, BasketContentToEntity(row))
	}
	return lines, nil
}

func (r *postgresRepo) LineViews(ctx context.Context, basketID int64) ([]entities.LineView, error) {
	query, args := r.qb.Select(
		"bc.product_id", "p.product_description", "s.seller_name", "bc.quantity", "bc.price").
		From("basket_contents bc").
		Join("products p ON p.product_id = bc.product_id").
		Join("sellers s ON s.seller_id = bc.seller_id").
		Where(sq.Eq{"bc.basket_id": basketID}).
		OrderBy("bc.product_id").
		MustSql()

	var rows []BasketContentView
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select basket contents: %w", err)
	}
	return LineViewsToEntity(rows), nil
}

func (r *postgresRepo) Total(ctx context.Context, basketID int64) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(quantity * price), 0)").
		From("basket_contents").
		Where(sq.Eq{"basket_id": basketID}).
		MustSql()

	var total decimal.Decimal
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum basket: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, basketID, productID int64, quantity int) error {
	query, args := r.qb.Update("basket_contents").
		Set("quantity", quantity).
		Where(sq.Eq{"basket_id": basketID, "product_id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update basket line: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteLine(ctx context.Context, basketID, productID int64) error {
	query, args := r.qb.Delete("basket_contents").
		Where(sq.Eq{"basket_id": basketID, "product_id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete basket line: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteLines(ctx context.Context, basketID int64) error {
	query, args := r.qb.Delete("basket_contents").
		Where(sq.Eq{"basket_id": basketID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete basket lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteBasket(ctx context.Context, shopperID, basketID int64) error {
	query, args := r.qb.Delete("shopper_baskets").
		Where(sq.Eq{"basket_id": basketID, "shopper_id": shopperID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete basket: %w", err)
	}
	return nil
}
