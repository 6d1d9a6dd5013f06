package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/viva"
	"github.com/consultingshop/checkout-service/pkg/trm"
	"github.com/consultingshop/checkout-service/pkg/utils"
)

type Pricer interface {
	Price(ctx context.Context, items []CartItem) (Quote, error)
}

type Verifier interface {
	VerifyByOrderCode(ctx context.Context, orderCode string) (VerifyResult, error)
	VerifyByTransaction(ctx context.Context, orderCode, transactionID string) (VerifyResult, error)
}

type Notifier interface {
	OrderPaid(ctx context.Context, notice entities.PaymentNotice) error
}

type checkoutService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	pricer     Pricer
	repo       OrderRepo
	gateway    Gateway
	verifier   Verifier
	notifier   Notifier
	sourceCode string
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	pricer Pricer,
	repo OrderRepo,
	gateway Gateway,
	verifier Verifier,
	notifier Notifier,
	sourceCode string,
) *checkoutService {
	return &checkoutService{
		logger:     logger.With(slog.String("service", "checkout")),
		txManager:  txManager,
		pricer:     pricer,
		repo:       repo,
		gateway:    gateway,
		verifier:   verifier,
		notifier:   notifier,
		sourceCode: sourceCode,
	}
}

// StartCheckout prices the cart, creates the remote order and persists the
// local pending order with its line items in one transaction. The order code
// is gateway-assigned, so the remote order is created first; a remote order
// that never gets a local row just fails verification later.
func (s *checkoutService) StartCheckout(ctx context.Context, customer entities.Customer, billing entities.Billing, items []CartItem) (string, string, error) {
	quote, err := s.pricer.Price(ctx, items)
	if err != nil {
		return "", "", err
	}

	created, err := s.gateway.CreateOrder(ctx, s.sourceCode, viva.CreateOrderRequest{
		AmountCents:   quote.AmountCents,
		CustomerEmail: customer.Email,
		CustomerName:  customer.FullName,
		MerchantRef:   fmt.Sprintf("storefront order (%d items)", len(quote.Lines)),
	})
	if err != nil {
		return "", "", fmt.Errorf("create remote order: %w", err)
	}

	order := entities.Order{
		OrderCode:     created.OrderCode,
		AmountCents:   quote.AmountCents,
		Status:        entities.StatusPending,
		CustomerEmail: customer.Email,
		CustomerName:  customer.FullName,
		Billing:       billing,
		Items:         quote.Lines,
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.CreateOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			if err := s.repo.SaveLineItems(ctx, order.OrderCode, order.Items); err != nil {
				return fmt.Errorf("failed to save line items: %w", err)
			}
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrDuplicateOrder); err != nil {
		return "", "", err
	}

	s.logger.InfoContext(ctx, "checkout started",
		slog.String("order_code", order.OrderCode),
		slog.Int64("amount_cents", order.AmountCents))

	return order.OrderCode, created.CheckoutURL, nil
}

// CompleteCheckout verifies the payment outcome after the buyer returns from
// the hosted payment page. The paid notification fires at most once per order,
// only on the call that actually moved it into paid; notification failures are
// logged and swallowed.
func (s *checkoutService) CompleteCheckout(ctx context.Context, orderCode, transactionID string) (VerifyResult, error) {
	var result VerifyResult
	var err error

	if transactionID != "" {
		result, err = s.verifier.VerifyByTransaction(ctx, orderCode, transactionID)
	} else {
		result, err = s.verifier.VerifyByOrderCode(ctx, orderCode)
	}
	if err != nil {
		return VerifyResult{}, err
	}

	if result.Transitioned && s.notifier != nil {
		s.notifyPaid(ctx, orderCode)
	}

	return result, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, orderCode string) (entities.Order, error) {
	return s.repo.GetOrderByCode(ctx, orderCode)
}

func (s *checkoutService) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return s.repo.LatestOrders(ctx, count)
}

func (s *checkoutService) notifyPaid(ctx context.Context, orderCode string) {
	order, err := s.repo.GetOrderByCode(ctx, orderCode)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load paid order for notification",
			slog.String("order_code", orderCode), slog.Any("error", err))
		return
	}

	notice := entities.PaymentNotice{
		OrderCode:     order.OrderCode,
		AmountCents:   order.AmountCents,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		TransactionID: order.TransactionID,
	}
	if order.PaidAt != nil {
		notice.PaidAt = *order.PaidAt
	}

	if err := s.notifier.OrderPaid(ctx, notice); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish paid notification",
			slog.String("order_code", orderCode), slog.Any("error", err))
	}
}
