package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/service"
	txMocks "github.com/SergeyBogomolovv/orinoco-shop/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

type offerTable map[[2]int64]decimal.Decimal

func (t offerTable) FindOffer(_ context.Context, productID, sellerID int64) (entities.Offer, error) {
	price, ok := t[[2]int64{productID, sellerID}]
	if !ok {
		return entities.Offer{}, entities.ErrOfferNotFound
	}
	return entities.Offer{ProductID: productID, SellerID: sellerID, Price: price}, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBasketService(store *memStore, offers offerTable, day time.Time) *service.BasketService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewBasketService(logger, &memTxManager{store: store}, store, offers)
	svc.SetClock(func() time.Time { return day })
	return svc
}

func addLine(t *testing.T, svc *service.BasketService, shopperID, basketID, productID int64, qty int, unitPrice string) int64 {
	t.Helper()
	id, err := svc.AddLine(context.Background(), entities.NewLine{
		ShopperID: shopperID,
		BasketID:  basketID,
		SellerID:  3,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: price(unitPrice),
	})
	require.NoError(t, err)
	return id
}

func TestBasketService_AddLineCreatesBasket(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	_, ok, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	require.False(t, ok)

	basketID := addLine(t, svc, 7, 0, 10, 2, "5.00")
	require.NotZero(t, basketID)

	resolved, ok, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, basketID, resolved)

	lines, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Index)
	assert.Equal(t, int64(10), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, price("10.00").Equal(lines[0].Total))

	total, err := svc.Total(ctx, basketID)
	require.NoError(t, err)
	assert.True(t, price("10.00").Equal(total), total.String())
}

func TestBasketService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	basketID := addLine(t, svc, 7, 0, 10, 2, "5.00")
	addLine(t, svc, 7, basketID, 11, 1, "3.50")

	require.NoError(t, svc.UpdateQuantity(ctx, basketID, 10, 5))

	lines, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(10), lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Index)

	total, err := svc.Total(ctx, basketID)
	require.NoError(t, err)
	assert.True(t, price("28.50").Equal(total), total.String())

	t.Run("absent line is a no-op", func(t *testing.T) {
		require.NoError(t, svc.UpdateQuantity(ctx, basketID, 99, 3))
		after, err := svc.ListLines(ctx, basketID)
		require.NoError(t, err)
		assert.Equal(t, lines, after)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		err := svc.UpdateQuantity(ctx, basketID, 10, 0)
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})
}

func TestBasketService_DeleteLineAndBasket(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	basketID := addLine(t, svc, 7, 0, 10, 1, "5.00")

	t.Run("basket with lines cannot be deleted", func(t *testing.T) {
		err := svc.DeleteBasket(ctx, 7, basketID)
		assert.ErrorIs(t, err, entities.ErrPersistence)
		_, ok, err := svc.ResolveTodaysBasket(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	require.NoError(t, svc.DeleteLine(ctx, basketID, 10))
	require.NoError(t, svc.DeleteLine(ctx, basketID, 10))

	lines, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)

	require.NoError(t, svc.DeleteBasket(ctx, 7, basketID))

	_, ok, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBasketService_AddThenDeleteIsInvisible(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	basketID := addLine(t, svc, 7, 0, 10, 2, "5.00")
	before, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)

	addLine(t, svc, 7, basketID, 12, 4, "1.10")
	require.NoError(t, svc.DeleteLine(ctx, basketID, 12))

	after, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBasketService_TotalMatchesLines(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	total, err := svc.Total(ctx, 12345)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	basketID := addLine(t, svc, 7, 0, 10, 3, "0.10")
	addLine(t, svc, 7, basketID, 11, 7, "19.99")
	addLine(t, svc, 7, basketID, 12, 1, "0.01")

	lines, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	total, err = svc.Total(ctx, basketID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(total), "sum %s total %s", sum, total)
	assert.True(t, price("140.24").Equal(total), total.String())
}

func TestBasketService_TodaysBasketIsOneTransaction(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, offerTable{{10, 3}: price("5.00")}, testDay)

	_, err := svc.AddProduct(ctx, 7, 10, 3, 2)
	require.NoError(t, err)

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Once()

	viewer := service.NewBasketService(slog.New(slog.NewTextHandler(io.Discard, nil)), tx, store, nil)
	viewer.SetClock(func() time.Time { return testDay })

	view, err := viewer.TodaysBasket(ctx, 7)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.True(t, price("10.00").Equal(view.Total), view.Total.String())

	store.failNext("Total", errStorage)
	_, err = svc.TodaysBasket(ctx, 7)
	assert.ErrorIs(t, err, entities.ErrPersistence)
}

func TestBasketService_OneBasketPerDay(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	first := addLine(t, svc, 7, 0, 10, 1, "5.00")
	second := addLine(t, svc, 7, 0, 11, 1, "5.00")
	assert.Equal(t, first, second, "basket id 0 reuses today's basket")
	assert.Equal(t, 1, store.basketCount(7))

	a, _, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	b, _, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	tomorrow := newBasketService(store, nil, testDay.AddDate(0, 0, 1))

	_, ok, err := tomorrow.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok, "yesterday's basket is not today's")

	next := addLine(t, tomorrow, 7, 0, 10, 1, "5.00")
	assert.NotEqual(t, first, next)
	assert.Equal(t, 2, store.basketCount(7))
}

func TestBasketService_AddLineValidation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	basketID := addLine(t, svc, 7, 0, 10, 1, "5.00")

	testCases := []struct {
		name    string
		line    entities.NewLine
		wantErr error
	}{
		{
			name:    "zero quantity",
			line:    entities.NewLine{ShopperID: 7, SellerID: 3, ProductID: 11, Quantity: 0, UnitPrice: price("1")},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:    "negative price",
			line:    entities.NewLine{ShopperID: 7, SellerID: 3, ProductID: 11, Quantity: 1, UnitPrice: price("-1")},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:    "zero price",
			line:    entities.NewLine{ShopperID: 7, SellerID: 3, ProductID: 11, Quantity: 1, UnitPrice: decimal.Zero},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:    "malformed product id",
			line:    entities.NewLine{ShopperID: 7, SellerID: 3, ProductID: -4, Quantity: 1, UnitPrice: price("1")},
			wantErr: entities.ErrInvalidInput,
		},
		{
			name:    "duplicate product",
			line:    entities.NewLine{ShopperID: 7, BasketID: basketID, SellerID: 4, ProductID: 10, Quantity: 3, UnitPrice: price("2")},
			wantErr: entities.ErrDuplicateLine,
		},
		{
			name:    "someone else's basket",
			line:    entities.NewLine{ShopperID: 8, BasketID: basketID, SellerID: 3, ProductID: 11, Quantity: 1, UnitPrice: price("2")},
			wantErr: entities.ErrBasketNotFound,
		},
		{
			name:    "unknown basket",
			line:    entities.NewLine{ShopperID: 7, BasketID: 999, SellerID: 3, ProductID: 11, Quantity: 1, UnitPrice: price("2")},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddLine(ctx, tc.line)
			assert.ErrorIs(t, err, tc.wantErr)

			lines, err := svc.ListLines(ctx, basketID)
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Equal(t, 1, lines[0].Quantity)
		})
	}
}

func TestBasketService_AddLineRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	store.failNext("InsertLine", errStorage)

	_, err := svc.AddLine(ctx, entities.NewLine{
		ShopperID: 7, SellerID: 3, ProductID: 10, Quantity: 2, UnitPrice: price("5.00"),
	})
	require.ErrorIs(t, err, entities.ErrPersistence)
	assert.ErrorIs(t, err, errStorage)

	_, ok, err := svc.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok, "basket created in the failed transaction must be rolled back")
	assert.Zero(t, store.basketCount(7))
}

func TestBasketService_StorageFailuresArePersistenceErrors(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, nil, testDay)

	store.failNext("TodaysBasket", errStorage)
	_, _, err := svc.ResolveTodaysBasket(ctx, 7)
	assert.ErrorIs(t, err, entities.ErrPersistence)

	store.failNext("Total", errStorage)
	_, err = svc.Total(ctx, 1)
	assert.ErrorIs(t, err, entities.ErrPersistence)

	store.failNext("DeleteLines", errStorage)
	err = svc.ClearLines(ctx, 1)
	assert.ErrorIs(t, err, entities.ErrPersistence)
}

func TestBasketService_ShopperOperations(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	offers := offerTable{
		{10, 3}: price("5.00"),
		{11, 3}: price("2.25"),
		{11, 4}: price("2.00"),
	}
	svc := newBasketService(store, offers, testDay)

	view, err := svc.TodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.True(t, view.Empty())
	assert.Zero(t, view.BasketID)
	assert.True(t, view.Total.IsZero())

	_, err = svc.AddProduct(ctx, 7, 10, 4, 1)
	assert.ErrorIs(t, err, entities.ErrOfferNotFound)

	basketID, err := svc.AddProduct(ctx, 7, 10, 3, 2)
	require.NoError(t, err)
	again, err := svc.AddProduct(ctx, 7, 11, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, basketID, again)

	_, err = svc.AddProduct(ctx, 7, 11, 3, 1)
	assert.ErrorIs(t, err, entities.ErrDuplicateLine)

	view, err = svc.TodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, basketID, view.BasketID)
	require.Len(t, view.Lines, 2)
	assert.True(t, price("2.00").Equal(view.Lines[1].UnitPrice), "price captured from the chosen seller")
	assert.True(t, price("12.00").Equal(view.Total), view.Total.String())

	require.NoError(t, svc.ChangeQuantity(ctx, 7, 11, 3))
	assert.ErrorIs(t, svc.ChangeQuantity(ctx, 7, 99, 3), entities.ErrLineNotFound)
	assert.ErrorIs(t, svc.ChangeQuantity(ctx, 8, 11, 3), entities.ErrLineNotFound)

	closed, err := svc.RemoveItem(ctx, 7, 10)
	require.NoError(t, err)
	assert.False(t, closed)

	_, err = svc.RemoveItem(ctx, 7, 10)
	assert.ErrorIs(t, err, entities.ErrLineNotFound)

	closed, err = svc.RemoveItem(ctx, 7, 11)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Zero(t, store.basketCount(7))

	_, err = svc.AddProduct(ctx, 7, 10, 3, 1)
	require.NoError(t, err)
	require.NoError(t, svc.EmptyBasket(ctx, 7))
	assert.Zero(t, store.basketCount(7))
	require.NoError(t, svc.EmptyBasket(ctx, 7), "emptying without a basket is a no-op")
}

func TestBasketService_RemoveItemRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newBasketService(store, offerTable{{10, 3}: price("5.00")}, testDay)

	basketID, err := svc.AddProduct(ctx, 7, 10, 3, 1)
	require.NoError(t, err)

	store.failNext("DeleteBasket", errStorage)
	_, err = svc.RemoveItem(ctx, 7, 10)
	require.ErrorIs(t, err, entities.ErrPersistence)

	lines, err := svc.ListLines(ctx, basketID)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "line deletion is undone together with the failed basket deletion")
}

func TestBasketService_BeginFailure(t *testing.T) {
	store := newMemStore()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		Return(errors.New("failed to begin tx: connection refused")).Once()

	svc := service.NewBasketService(slog.New(slog.NewTextHandler(io.Discard, nil)), tx, store, nil)

	_, err := svc.AddLine(context.Background(), entities.NewLine{
		ShopperID: 7, SellerID: 3, ProductID: 10, Quantity: 1, UnitPrice: price("5.00"),
	})
	assert.ErrorIs(t, err, entities.ErrPersistence)
	assert.Zero(t, store.basketCount(7))
}

func TestBasketService_JoinsOuterTransaction(t *testing.T) {
	store := newMemStore()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	svc := service.NewBasketService(slog.New(slog.NewTextHandler(io.Discard, nil)), tx, store, offerTable{})
	svc.SetClock(func() time.Time { return testDay })

	basketID := addLine(t, svc, 7, 0, 10, 1, "5.00")
	require.NoError(t, svc.ClearLines(context.Background(), basketID))
	require.NoError(t, svc.DeleteBasket(context.Background(), 7, basketID))
	assert.Zero(t, store.basketCount(7))
}
