package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/handler"
	mocks "github.com/consultingshop/checkout-service/internal/handler/mocks"
	"github.com/consultingshop/checkout-service/internal/service"
	"github.com/consultingshop/checkout-service/internal/viva"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*mocks.MockCheckoutService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockCheckoutService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, svc).Init(r)
	return svc, r
}

func TestHTTPHandler_StartCheckout(t *testing.T) {
	validBody := `{
		"customer": {"email": "alice@example.com", "full_name": "Alice Doe"},
		"items": [{"id": "audit", "qty": 1}],
		"billing": {"kind": "person", "person": {"first_name": "Alice", "last_name": "Doe"}}
	}`

	type MockBehavior func(svc *mocks.MockCheckoutService)

	testCases := []struct {
		name         string
		body         string
		mockBehavior MockBehavior
		wantCode     int
		wantError    string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					StartCheckout(mock.Anything,
						entities.Customer{Email: "alice@example.com", FullName: "Alice Doe"},
						mock.MatchedBy(func(b entities.Billing) bool { return b.Kind == entities.BillingPerson }),
						[]service.CartItem{{ProductID: "audit", Quantity: 1}}).
					Return("5126354987", "https://demo.vivapayments.com/web/checkout?ref=5126354987", nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "malformed json",
			body:         `{"customer":`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:         "missing customer email",
			body:         `{"customer": {"full_name": "Alice Doe"}, "items": [{"id": "audit", "qty": 1}]}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name: "empty cart",
			body: `{"customer": {"email": "alice@example.com", "full_name": "Alice Doe"}, "items": []}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					StartCheckout(mock.Anything, mock.Anything, mock.Anything, []service.CartItem{}).
					Return("", "", entities.ErrEmptyCart).Once()
			},
			wantCode:  http.StatusBadRequest,
			wantError: "empty_cart",
		},
		{
			name: "unknown product",
			body: validBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().StartCheckout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", "", entities.ErrProductNotFound).Once()
			},
			wantCode:  http.StatusBadRequest,
			wantError: "unknown_product",
		},
		{
			name: "gateway unavailable",
			body: validBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().StartCheckout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", "", viva.ErrUnavailable).Once()
			},
			wantCode:  http.StatusBadGateway,
			wantError: "gateway_error",
		},
		{
			name: "gateway rejected the order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().StartCheckout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", "", &viva.RequestError{Status: 400, Body: "invalid source"}).Once()
			},
			wantCode:  http.StatusBadGateway,
			wantError: "gateway_error",
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().StartCheckout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", "", errors.New("db down")).Once()
			},
			wantCode:  http.StatusInternalServerError,
			wantError: "internal_error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, router := setupRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusOK {
				var resp handler.CheckoutResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.OK)
				assert.Equal(t, "5126354987", resp.OrderCode)
				assert.NotEmpty(t, resp.RedirectURL)
			}
			if tc.wantError != "" {
				var resp handler.FailureResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.OK)
				assert.Equal(t, tc.wantError, resp.Error)
			}
		})
	}
}

func TestHTTPHandler_VerifyCheckout(t *testing.T) {
	type MockBehavior func(svc *mocks.MockCheckoutService)

	testCases := []struct {
		name         string
		target       string
		mockBehavior MockBehavior
		wantCode     int
		wantError    string
		wantStatus   string
	}{
		{
			name:   "paid",
			target: "/checkout/verify?order_code=5126354987",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "").
					Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1", Transitioned: true}, nil).
					Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: "paid",
		},
		{
			name:   "transaction id is forwarded",
			target: "/checkout/verify?order_code=5126354987&transaction_id=tx-1",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "tx-1").
					Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1"}, nil).
					Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: "paid",
		},
		{
			name:   "still pending",
			target: "/checkout/verify?order_code=5126354987",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "").
					Return(service.VerifyResult{OK: true, Status: "pending"}, nil).Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: "pending",
		},
		{
			name:         "missing order code",
			target:       "/checkout/verify",
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:   "order not found locally",
			target: "/checkout/verify?order_code=404404",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "404404", "").
					Return(service.VerifyResult{}, entities.ErrOrderNotFound).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: "order_not_found",
		},
		{
			name:   "order unknown to the gateway",
			target: "/checkout/verify?order_code=5126354987",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "").
					Return(service.VerifyResult{FailCode: service.FailGatewayOrderNotFound}, nil).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: service.FailGatewayOrderNotFound,
		},
		{
			name:   "order data mismatch",
			target: "/checkout/verify?order_code=5126354987",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "").
					Return(service.VerifyResult{
						FailCode: service.FailOrderDataMismatch,
						Details:  map[string]any{"expected_cents": int64(1000), "viva_cents": int64(1200)},
					}, nil).Once()
			},
			wantCode:  http.StatusConflict,
			wantError: service.FailOrderDataMismatch,
		},
		{
			name:   "gateway unreachable",
			target: "/checkout/verify?order_code=5126354987",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().CompleteCheckout(mock.Anything, "5126354987", "").
					Return(service.VerifyResult{}, viva.ErrUnavailable).Once()
			},
			wantCode:  http.StatusBadGateway,
			wantError: "verify_failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, router := setupRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)

			if tc.wantStatus != "" {
				var resp handler.VerifyResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.OK)
				assert.Equal(t, tc.wantStatus, resp.Status)
			}
			if tc.wantError != "" {
				var resp handler.FailureResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.OK)
				assert.Equal(t, tc.wantError, resp.Error)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	paidAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		OrderCode:     "5126354987",
		AmountCents:   50000,
		Status:        entities.StatusPaid,
		CustomerEmail: "alice@example.com",
		TransactionID: "tx-1",
		PaidAt:        &paidAt,
		Items: []entities.LineItem{
			{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 1, TotalCents: 50000},
		},
	}

	t.Run("returns the order with items", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetOrder(mock.Anything, "5126354987").Return(order, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/5126354987", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "5126354987", resp.OrderCode)
		assert.Equal(t, "paid", resp.Status)
		assert.Equal(t, int64(50000), resp.AmountCents)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "audit", resp.Items[0].ProductID)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().GetOrder(mock.Anything, "404404").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders/404404", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_LatestOrders(t *testing.T) {
	t.Run("defaults the limit", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().LatestOrders(mock.Anything, 50).Return([]entities.Order{
			{OrderCode: "1", AmountCents: 1000, Status: entities.StatusPending},
			{OrderCode: "2", AmountCents: 2000, Status: entities.StatusPaid},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("honors an explicit limit", func(t *testing.T) {
		svc, router := setupRouter(t)
		svc.EXPECT().LatestOrders(mock.Anything, 5).Return([]entities.Order{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/orders?limit=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		_, router := setupRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/admin/orders?limit=zero", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
