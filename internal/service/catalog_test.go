package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/orinoco-shop/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ValidateShopper(t *testing.T) {
	testCases := []struct {
		name         string
		shopperID    int64
		mockBehavior func(repo *mocks.MockCatalogRepo)
		wantErr      error
	}{
		{
			name:      "existing shopper",
			shopperID: 7,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetShopper(mock.Anything, int64(7)).
					Return(entities.Shopper{ID: 7, FirstName: "Ann"}, nil).Once()
			},
		},
		{
			name:      "unknown shopper",
			shopperID: 9,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetShopper(mock.Anything, int64(9)).
					Return(entities.Shopper{}, entities.ErrShopperNotFound).Once()
			},
			wantErr: entities.ErrShopperNotFound,
		},
		{
			name:         "malformed id",
			shopperID:    -1,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:      "storage error",
			shopperID: 7,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().GetShopper(mock.Anything, int64(7)).
					Return(entities.Shopper{}, errors.New("db error")).Once()
			},
			wantErr: entities.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCatalogService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

			id, err := svc.ValidateShopper(context.Background(), tc.shopperID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shopperID, id)
		})
	}
}

func TestCatalogService_FindOffer(t *testing.T) {
	offer := entities.Offer{ProductID: 10, SellerID: 3, SellerName: "Acme", Price: decimal.RequireFromString("5.00")}

	repo := mocks.NewMockCatalogRepo(t)
	repo.EXPECT().GetOffer(mock.Anything, int64(10), int64(3)).Return(offer, nil).Once()
	repo.EXPECT().GetOffer(mock.Anything, int64(10), int64(4)).Return(entities.Offer{}, entities.ErrOfferNotFound).Once()

	svc := service.NewCatalogService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	got, err := svc.FindOffer(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, offer, got)

	_, err = svc.FindOffer(context.Background(), 10, 4)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = svc.FindOffer(context.Background(), 0, 4)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestCatalogService_Listings(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	repo.EXPECT().Categories(mock.Anything).Return([]entities.Category{{ID: 1, Description: "Kitchen"}}, nil).Once()
	repo.EXPECT().CategoryProducts(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()
	repo.EXPECT().ProductOffers(mock.Anything, int64(10)).Return([]entities.Offer{{ProductID: 10, SellerID: 3}}, nil).Once()

	svc := service.NewCatalogService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	_, err = svc.CategoryProducts(context.Background(), 1)
	assert.ErrorIs(t, err, entities.ErrPersistence)

	offers, err := svc.ProductSellers(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}
