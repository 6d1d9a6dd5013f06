package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/service"
	mocks "github.com/consultingshop/checkout-service/internal/service/mocks"
	"github.com/consultingshop/checkout-service/internal/viva"
	trmMocks "github.com/consultingshop/checkout-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutAPI interface {
	StartCheckout(ctx context.Context, customer entities.Customer, billing entities.Billing, items []service.CartItem) (string, string, error)
	CompleteCheckout(ctx context.Context, orderCode, transactionID string) (service.VerifyResult, error)
}

type checkoutMocks struct {
	txManager *trmMocks.MockManager
	pricer    *mocks.MockPricer
	repo      *mocks.MockOrderRepo
	gateway   *mocks.MockGateway
	verifier  *mocks.MockVerifier
	notifier  *mocks.MockNotifier
}

func newCheckoutService(t *testing.T) (*checkoutMocks, checkoutAPI) {
	m := &checkoutMocks{
		txManager: trmMocks.NewMockManager(t),
		pricer:    mocks.NewMockPricer(t),
		repo:      mocks.NewMockOrderRepo(t),
		gateway:   mocks.NewMockGateway(t),
		verifier:  mocks.NewMockVerifier(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCheckoutService(logger, m.txManager, m.pricer, m.repo, m.gateway, m.verifier, m.notifier, "4929")
	return m, svc
}

func (m *checkoutMocks) passThroughTx() {
	m.txManager.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCheckoutService_StartCheckout(t *testing.T) {
	customer := entities.Customer{Email: "alice@example.com", FullName: "Alice Doe"}
	billing := entities.Billing{Kind: entities.BillingPerson, Person: &entities.PersonBilling{FirstName: "Alice", LastName: "Doe"}}
	items := []service.CartItem{{ProductID: "audit", Quantity: 1}}
	quote := service.Quote{
		AmountCents: 50000,
		Lines: []entities.LineItem{
			{ProductID: "audit", Title: "Security Audit", UnitPriceCents: 50000, Quantity: 1, TotalCents: 50000},
		},
	}

	t.Run("prices the cart, creates the remote order, persists locally", func(t *testing.T) {
		m, svc := newCheckoutService(t)
		m.passThroughTx()

		m.pricer.EXPECT().Price(mock.Anything, items).Return(quote, nil).Once()
		m.gateway.EXPECT().
			CreateOrder(mock.Anything, "4929", mock.MatchedBy(func(req viva.CreateOrderRequest) bool {
				return req.AmountCents == 50000 && req.CustomerEmail == "alice@example.com"
			})).
			Return(viva.CreatedOrder{OrderCode: "5126354987", CheckoutURL: "https://demo.vivapayments.com/web/checkout?ref=5126354987"}, nil).
			Once()
		m.repo.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.OrderCode == "5126354987" &&
					o.AmountCents == 50000 &&
					o.Status == entities.StatusPending &&
					o.Billing.Kind == entities.BillingPerson
			})).
			Return(nil).Once()
		m.repo.EXPECT().SaveLineItems(mock.Anything, "5126354987", quote.Lines).Return(nil).Once()

		orderCode, redirectURL, err := svc.StartCheckout(context.Background(), customer, billing, items)
		require.NoError(t, err)
		assert.Equal(t, "5126354987", orderCode)
		assert.Equal(t, "https://demo.vivapayments.com/web/checkout?ref=5126354987", redirectURL)
	})

	t.Run("pricing failure stops before the gateway", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.pricer.EXPECT().Price(mock.Anything, items).Return(service.Quote{}, entities.ErrEmptyCart).Once()

		_, _, err := svc.StartCheckout(context.Background(), customer, billing, items)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("gateway failure leaves the ledger untouched", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.pricer.EXPECT().Price(mock.Anything, items).Return(quote, nil).Once()
		m.gateway.EXPECT().CreateOrder(mock.Anything, "4929", mock.Anything).
			Return(viva.CreatedOrder{}, viva.ErrUnavailable).Once()

		_, _, err := svc.StartCheckout(context.Background(), customer, billing, items)
		assert.ErrorIs(t, err, viva.ErrUnavailable)
	})

	t.Run("duplicate order code is not retried", func(t *testing.T) {
		m, svc := newCheckoutService(t)
		m.passThroughTx()

		m.pricer.EXPECT().Price(mock.Anything, items).Return(quote, nil).Once()
		m.gateway.EXPECT().CreateOrder(mock.Anything, "4929", mock.Anything).
			Return(viva.CreatedOrder{OrderCode: "5126354987"}, nil).Once()
		m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(entities.ErrDuplicateOrder).Once()

		start := time.Now()
		_, _, err := svc.StartCheckout(context.Background(), customer, billing, items)
		assert.ErrorIs(t, err, entities.ErrDuplicateOrder)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestCheckoutService_CompleteCheckout(t *testing.T) {
	paidAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	paidOrder := entities.Order{
		OrderCode:     "5126354987",
		AmountCents:   50000,
		Status:        entities.StatusPaid,
		CustomerEmail: "alice@example.com",
		CustomerName:  "Alice Doe",
		TransactionID: "tx-1",
		PaidAt:        &paidAt,
	}

	t.Run("verifies by order code when no transaction id is given", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByOrderCode(mock.Anything, "5126354987").
			Return(service.VerifyResult{OK: true, Status: "pending"}, nil).Once()

		result, err := svc.CompleteCheckout(context.Background(), "5126354987", "")
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("verifies by transaction when one is given", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByTransaction(mock.Anything, "5126354987", "tx-1").
			Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1"}, nil).Once()

		result, err := svc.CompleteCheckout(context.Background(), "5126354987", "tx-1")
		require.NoError(t, err)
		assert.Equal(t, "paid", result.Status)
	})

	t.Run("notifies exactly when the order transitioned into paid", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByOrderCode(mock.Anything, "5126354987").
			Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1", Transitioned: true}, nil).Once()
		m.repo.EXPECT().GetOrderByCode(mock.Anything, "5126354987").Return(paidOrder, nil).Once()
		m.notifier.EXPECT().
			OrderPaid(mock.Anything, entities.PaymentNotice{
				OrderCode:     "5126354987",
				AmountCents:   50000,
				CustomerEmail: "alice@example.com",
				CustomerName:  "Alice Doe",
				TransactionID: "tx-1",
				PaidAt:        paidAt,
			}).
			Return(nil).Once()

		result, err := svc.CompleteCheckout(context.Background(), "5126354987", "")
		require.NoError(t, err)
		assert.True(t, result.Transitioned)
	})

	t.Run("does not notify on a repeat verification", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByOrderCode(mock.Anything, "5126354987").
			Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1"}, nil).Once()

		result, err := svc.CompleteCheckout(context.Background(), "5126354987", "")
		require.NoError(t, err)
		assert.False(t, result.Transitioned)
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByOrderCode(mock.Anything, "5126354987").
			Return(service.VerifyResult{OK: true, Status: "paid", TransactionID: "tx-1", Transitioned: true}, nil).Once()
		m.repo.EXPECT().GetOrderByCode(mock.Anything, "5126354987").Return(paidOrder, nil).Once()
		m.notifier.EXPECT().OrderPaid(mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable")).Once()

		result, err := svc.CompleteCheckout(context.Background(), "5126354987", "")
		require.NoError(t, err)
		assert.True(t, result.Transitioned)
	})

	t.Run("verification error is propagated", func(t *testing.T) {
		m, svc := newCheckoutService(t)

		m.verifier.EXPECT().VerifyByOrderCode(mock.Anything, "5126354987").
			Return(service.VerifyResult{}, entities.ErrOrderNotFound).Once()

		_, err := svc.CompleteCheckout(context.Background(), "5126354987", "")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
