package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/service"
	mocks "github.com/consultingshop/checkout-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPricerService_Price(t *testing.T) {
	type MockBehavior func(catalog *mocks.MockCatalog, cache *mocks.MockCache)

	audit := entities.Product{ID: "audit", Title: "Security Audit", PriceCents: 50000}

	testCases := []struct {
		name             string
		items            []service.CartItem
		allowClientPrice bool
		mockBehavior     MockBehavior
		want             service.Quote
		wantErrIs        error
	}{
		{
			name: "catalog price wins over client price",
			items: []service.CartItem{
				{ProductID: "audit", Quantity: 2, UnitPriceCents: 1, Title: "cheap audit"},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("audit").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "audit").Return(audit, nil).Once()
				cache.EXPECT().Set("audit", mock.Anything).Once()
			},
			want: service.Quote{
				AmountCents: 100000,
				Lines: []entities.LineItem{
					{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 2, TotalCents: 100000},
				},
			},
		},
		{
			name: "quantity below one is coerced to one",
			items: []service.CartItem{
				{ProductID: "audit", Quantity: 0},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("audit").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "audit").Return(audit, nil).Once()
				cache.EXPECT().Set("audit", mock.Anything).Once()
			},
			want: service.Quote{
				AmountCents: 50000,
				Lines: []entities.LineItem{
					{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 1, TotalCents: 50000},
				},
			},
		},
		{
			name:         "empty cart",
			items:        []service.CartItem{},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {},
			wantErrIs:    entities.ErrEmptyCart,
		},
		{
			name: "unknown product",
			items: []service.CartItem{
				{ProductID: "ghost", Quantity: 1, UnitPriceCents: 9900},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("ghost").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "ghost").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErrIs: entities.ErrProductNotFound,
		},
		{
			name: "client price fallback for unknown product",
			items: []service.CartItem{
				{ProductID: "ghost", Quantity: 3, UnitPriceCents: 9900, Title: "Custom Engagement"},
			},
			allowClientPrice: true,
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("ghost").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "ghost").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			want: service.Quote{
				AmountCents: 29700,
				Lines: []entities.LineItem{
					{ProductID: "ghost", Title: "Custom Engagement", UnitPriceCents: 9900, Quantity: 3, TotalCents: 29700},
				},
			},
		},
		{
			name: "fallback does not accept a zero client price",
			items: []service.CartItem{
				{ProductID: "ghost", Quantity: 1, UnitPriceCents: 0},
			},
			allowClientPrice: true,
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("ghost").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "ghost").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErrIs: entities.ErrProductNotFound,
		},
		{
			name: "non-positive catalog price is rejected",
			items: []service.CartItem{
				{ProductID: "free", Quantity: 1},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("free").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "free").
					Return(entities.Product{ID: "free", Title: "Freebie", PriceCents: 0}, nil).Once()
				cache.EXPECT().Set("free", mock.Anything).Once()
			},
			wantErrIs: entities.ErrInvalidPrice,
		},
		{
			name: "cached product skips the catalog",
			items: []service.CartItem{
				{ProductID: "audit", Quantity: 1},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				data, err := audit.Marshal()
				require.NoError(t, err)
				cache.EXPECT().Get("audit").Return(data, true).Once()
			},
			want: service.Quote{
				AmountCents: 50000,
				Lines: []entities.LineItem{
					{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 1, TotalCents: 50000},
				},
			},
		},
		{
			name: "multi line total",
			items: []service.CartItem{
				{ProductID: "audit", Quantity: 1},
				{ProductID: "retainer", Quantity: 4},
			},
			mockBehavior: func(catalog *mocks.MockCatalog, cache *mocks.MockCache) {
				cache.EXPECT().Get("audit").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "audit").Return(audit, nil).Once()
				cache.EXPECT().Set("audit", mock.Anything).Once()

				cache.EXPECT().Get("retainer").Return(nil, false).Once()
				catalog.EXPECT().ProductByID(mock.Anything, "retainer").
					Return(entities.Product{ID: "retainer", Title: "Monthly Retainer", PriceCents: 20000}, nil).Once()
				cache.EXPECT().Set("retainer", mock.Anything).Once()
			},
			want: service.Quote{
				AmountCents: 130000,
				Lines: []entities.LineItem{
					{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 1, TotalCents: 50000},
					{ProductID: "retainer", Title: "Monthly Retainer", UnitPriceCents: 20000, Quantity: 4, TotalCents: 80000},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalog(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(catalog, cache)

			svc := service.NewPricerService(logger, catalog, cache, tc.allowClientPrice)

			got, err := svc.Price(context.Background(), tc.items)
			if tc.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
