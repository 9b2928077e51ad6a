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
	mocks "github.com/SergeyBogomolovv/orinoco-shop/internal/service/mocks"
	"github.com/SergeyBogomolovv/orinoco-shop/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	store     *memStore
	baskets   *service.BasketService
	checkout  *service.CheckoutService
	publisher *mocks.MockOrderPublisher
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	store := newMemStore()
	tx := &memTxManager{store: store}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	baskets := newBasketService(store, nil, testDay)
	publisher := mocks.NewMockOrderPublisher(t)
	retry := utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond}

	checkout := service.NewCheckoutService(logger, tx, baskets, store, publisher, retry)
	checkout.SetClock(func() time.Time { return testDay })

	return checkoutFixture{
		store:     store,
		baskets:   baskets,
		checkout:  checkout,
		publisher: publisher,
	}
}

func (f checkoutFixture) expectPublished(t *testing.T) *entities.Order {
	var published entities.Order
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) error {
			published = o
			return nil
		}).Once()
	return &published
}

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	basketID := addLine(t, f.baskets, 7, 0, 10, 2, "5.00")
	addLine(t, f.baskets, 7, basketID, 11, 1, "3.50")
	before, err := f.baskets.Lines(ctx, basketID)
	require.NoError(t, err)

	published := f.expectPublished(t)

	orderID, err := f.checkout.Checkout(ctx, 7, basketID)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order, ok := f.store.orders[orderID]
	require.True(t, ok)
	assert.Equal(t, int64(7), order.ShopperID)
	assert.Equal(t, basketID, order.BasketID)
	assert.Equal(t, entities.StatusPlaced, order.Status)
	assert.Equal(t, entities.Day(testDay), order.Date)

	require.Len(t, order.Lines, 2)
	for i, line := range order.Lines {
		assert.Equal(t, before[i].ProductID, line.ProductID)
		assert.Equal(t, before[i].SellerID, line.SellerID)
		assert.Equal(t, before[i].Quantity, line.Quantity)
		assert.True(t, before[i].UnitPrice.Equal(line.UnitPrice))
		assert.Equal(t, entities.StatusPlaced, line.Status)
	}

	lines, err := f.baskets.ListLines(ctx, basketID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, ok, err = f.baskets.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, orderID, published.ID)
	assert.Len(t, published.Lines, 2)
}

func TestCheckoutService_RetryAfterFailedClear(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	basketID := addLine(t, f.baskets, 7, 0, 10, 2, "5.00")
	addLine(t, f.baskets, 7, basketID, 11, 1, "3.50")

	// обе попытки очистки падают
	f.store.failNext("DeleteLines", errStorage, errStorage)

	_, err := f.checkout.Checkout(ctx, 7, basketID)
	require.ErrorIs(t, err, entities.ErrPersistence)
	require.ErrorIs(t, err, errStorage)

	require.Len(t, f.store.orders, 1, "order is committed before the basket is cleared")
	lines, err := f.baskets.Lines(ctx, basketID)
	require.NoError(t, err)
	assert.Len(t, lines, 2, "basket stays intact for the retry")

	published := f.expectPublished(t)

	orderID, err := f.checkout.Checkout(ctx, 7, basketID)
	require.NoError(t, err)

	assert.Len(t, f.store.orders, 1, "retry must not create a second order")
	assert.Len(t, f.store.orders[orderID].Lines, 2)
	assert.Equal(t, orderID, published.ID)

	_, ok, err := f.baskets.ResolveTodaysBasket(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckoutService_OrderedBasketIsClosed(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	basketID := addLine(t, f.baskets, 7, 0, 10, 2, "5.00")
	addLine(t, f.baskets, 7, basketID, 12, 1, "1.00")

	f.store.failNext("DeleteLines", errStorage, errStorage)
	_, err := f.checkout.Checkout(ctx, 7, basketID)
	require.ErrorIs(t, err, errStorage)

	newLine := entities.NewLine{ShopperID: 7, SellerID: 3, ProductID: 11, Quantity: 1, UnitPrice: price("3.50")}

	_, err = f.baskets.AddLine(ctx, newLine)
	assert.ErrorIs(t, err, entities.ErrBasketOrdered)
	assert.ErrorIs(t, err, entities.ErrPreconditionViolation)

	newLine.BasketID = basketID
	_, err = f.baskets.AddLine(ctx, newLine)
	assert.ErrorIs(t, err, entities.ErrBasketOrdered)

	assert.ErrorIs(t, f.baskets.UpdateQuantity(ctx, basketID, 10, 5), entities.ErrBasketOrdered)
	assert.ErrorIs(t, f.baskets.DeleteLine(ctx, basketID, 10), entities.ErrBasketOrdered)
	assert.ErrorIs(t, f.baskets.ChangeQuantity(ctx, 7, 10, 5), entities.ErrBasketOrdered)
	_, err = f.baskets.RemoveItem(ctx, 7, 12)
	assert.ErrorIs(t, err, entities.ErrBasketOrdered)

	lines, err := f.baskets.Lines(ctx, basketID)
	require.NoError(t, err)
	require.Len(t, lines, 2, "ordered basket keeps exactly the ordered lines")
	assert.Equal(t, 2, lines[0].Quantity)

	f.expectPublished(t)
	orderID, err := f.checkout.Checkout(ctx, 7, basketID)
	require.NoError(t, err)
	require.Len(t, f.store.orders[orderID].Lines, 2)

	// после завершения оформления покупатель получает новую корзину
	newLine.BasketID = 0
	nextID, err := f.baskets.AddLine(ctx, newLine)
	require.NoError(t, err)
	assert.NotEqual(t, basketID, nextID)
}

func TestCheckoutService_TransientClearFailure(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	basketID := addLine(t, f.baskets, 7, 0, 10, 1, "5.00")
	f.store.failNext("DeleteBasket", errStorage)
	f.expectPublished(t)

	_, err := f.checkout.Checkout(ctx, 7, basketID)
	require.NoError(t, err)

	assert.Zero(t, f.store.basketCount(7))
	assert.Len(t, f.store.orders, 1)
}

func TestCheckoutService_OrderRollsBack(t *testing.T) {
	testCases := []struct {
		name string
		op   string
	}{
		{name: "order header fails", op: "CreateOrder"},
		{name: "order lines fail", op: "CreateOrderLines"},
		{name: "reading lines fails", op: "Lines"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCheckoutFixture(t)

			basketID := addLine(t, f.baskets, 7, 0, 10, 2, "5.00")
			f.store.failNext(tc.op, errStorage)

			_, err := f.checkout.Checkout(ctx, 7, basketID)
			require.ErrorIs(t, err, entities.ErrPersistence)

			assert.Empty(t, f.store.orders)
			lines, err := f.baskets.Lines(ctx, basketID)
			require.NoError(t, err)
			assert.Len(t, lines, 1)
		})
	}
}

func TestCheckoutService_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty basket", func(t *testing.T) {
		f := newCheckoutFixture(t)
		basketID, err := f.store.CreateBasket(ctx, 7, entities.Day(testDay))
		require.NoError(t, err)

		_, err = f.checkout.Checkout(ctx, 7, basketID)
		assert.ErrorIs(t, err, entities.ErrEmptyBasket)
		assert.ErrorIs(t, err, entities.ErrPreconditionViolation)
		assert.Empty(t, f.store.orders, "order header is rolled back")
	})

	t.Run("no basket today", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.checkout.CheckoutToday(ctx, 7)
		assert.ErrorIs(t, err, entities.ErrEmptyBasket)
	})

	t.Run("unknown basket", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.checkout.Checkout(ctx, 7, 404)
		assert.ErrorIs(t, err, entities.ErrBasketNotFound)
	})

	t.Run("basket of another shopper", func(t *testing.T) {
		f := newCheckoutFixture(t)
		basketID := addLine(t, f.baskets, 8, 0, 10, 1, "5.00")

		_, err := f.checkout.Checkout(ctx, 7, basketID)
		assert.ErrorIs(t, err, entities.ErrNotFound)
		assert.Empty(t, f.store.orders)
		assert.Equal(t, 1, f.store.basketCount(8))
	})

	t.Run("malformed ids", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.checkout.Checkout(ctx, 0, 1)
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})
}

func TestCheckoutService_CheckoutToday(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	addLine(t, f.baskets, 7, 0, 10, 1, "5.00")
	f.expectPublished(t)

	orderID, err := f.checkout.CheckoutToday(ctx, 7)
	require.NoError(t, err)
	assert.Contains(t, f.store.orders, orderID)

	_, err = f.checkout.CheckoutToday(ctx, 7)
	assert.ErrorIs(t, err, entities.ErrEmptyBasket, "second checkout has nothing to order")
}

func TestCheckoutService_PublishFailureDoesNotFailCheckout(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	basketID := addLine(t, f.baskets, 7, 0, 10, 1, "5.00")
	f.publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	orderID, err := f.checkout.Checkout(ctx, 7, basketID)
	require.NoError(t, err)
	assert.Contains(t, f.store.orders, orderID)
}
