package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/viva"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	SaveLineItems(ctx context.Context, orderCode string, items []entities.LineItem) error
	GetOrderByCode(ctx context.Context, orderCode string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// UpdateStatus is an atomic conditional write: terminal states are
	// sticky, paid_at and transaction_id are first-writer-wins. Reports
	// whether a transition actually happened.
	UpdateStatus(ctx context.Context, orderCode string, status entities.OrderStatus, transactionID string) (bool, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, sourceCode string, req viva.CreateOrderRequest) (viva.CreatedOrder, error)
	GetOrder(ctx context.Context, orderCode string) (*viva.OrderState, error)
	GetTransaction(ctx context.Context, transactionID string) (viva.TransactionState, error)
}

// Failure codes carried by VerifyResult when OK is false. Transport failures
// are not listed here: those come back as plain errors and the ledger stays
// untouched so the client can retry.
const (
	FailGatewayOrderNotFound = "gateway_order_not_found"
	FailOrderDataMismatch    = "order_data_mismatch"
)

// StatusUnknown is returned when the gateway reports a state code outside the
// published table. The local status is deliberately left alone.
const StatusUnknown = "unknown"

type VerifyResult struct {
	OK            bool
	Status        string
	FailCode      string
	Details       map[string]any
	TransactionID string

	// Transitioned is true only when this very call moved the order into
	// paid. The orchestrator uses it to fire the notification at most once.
	Transitioned bool
}

type reconcileService struct {
	logger         *slog.Logger
	repo           OrderRepo
	gateway        Gateway
	expectedSource string
}

func NewReconcileService(logger *slog.Logger, repo OrderRepo, gateway Gateway, expectedSource string) *reconcileService {
	return &reconcileService{
		logger:         logger.With(slog.String("service", "reconcile")),
		repo:           repo,
		gateway:        gateway,
		expectedSource: expectedSource,
	}
}

// VerifyByOrderCode fetches the remote order and reconciles the local status
// with it. Safe to call any number of times: repeated calls on a settled order
// are no-ops.
func (s *reconcileService) VerifyByOrderCode(ctx context.Context, orderCode string) (VerifyResult, error) {
	order, err := s.repo.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return VerifyResult{}, err
	}

	remote, err := s.gateway.GetOrder(ctx, orderCode)
	if err != nil {
		// transport failure: leave the ledger alone, the client retries
		return VerifyResult{}, fmt.Errorf("fetch remote order %s: %w", orderCode, err)
	}

	if remote == nil {
		if _, err := s.repo.UpdateStatus(ctx, orderCode, entities.StatusError, ""); err != nil {
			return VerifyResult{}, err
		}
		s.logger.WarnContext(ctx, "order unknown to gateway", slog.String("order_code", orderCode))
		return VerifyResult{FailCode: FailGatewayOrderNotFound}, nil
	}

	remoteCents := viva.ToCents(remote.RequestAmount)
	if remoteCents != order.AmountCents {
		return s.markMismatch(ctx, orderCode, map[string]any{
			"expected_cents": order.AmountCents,
			"viva_cents":     remoteCents,
		})
	}
	if s.expectedSource != "" && remote.SourceCode != s.expectedSource {
		return s.markMismatch(ctx, orderCode, map[string]any{
			"expected_source": s.expectedSource,
			"viva_source":     remote.SourceCode,
		})
	}

	status, known := viva.MapState(remote.StateID)
	if !known {
		s.logger.WarnContext(ctx, "unknown gateway state code",
			slog.String("order_code", orderCode), slog.Int("state_id", remote.StateID))
		return VerifyResult{OK: true, Status: StatusUnknown}, nil
	}

	var transactionID string
	if status == entities.StatusPaid {
		transactionID = remote.TransactionID
	}

	transitioned, err := s.repo.UpdateStatus(ctx, orderCode, status, transactionID)
	if err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{
		OK:            true,
		Status:        string(status),
		TransactionID: transactionID,
		Transitioned:  transitioned && status == entities.StatusPaid,
	}, nil
}

// VerifyByTransaction correlates an explicit transaction id with the local
// order. Success requires a finalized transaction that matches the order on
// both code and amount, anything else settles the order as failed.
func (s *reconcileService) VerifyByTransaction(ctx context.Context, orderCode, transactionID string) (VerifyResult, error) {
	order, err := s.repo.GetOrderByCode(ctx, orderCode)
	if err != nil {
		return VerifyResult{}, err
	}

	tx, err := s.gateway.GetTransaction(ctx, transactionID)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("fetch transaction %s: %w", transactionID, err)
	}

	txOrderCode := strconv.FormatInt(tx.OrderCode, 10)
	txCents := viva.ToCents(tx.Amount)

	if tx.StatusID != viva.TxStatusFinalized || txOrderCode != order.OrderCode || txCents != order.AmountCents {
		if _, err := s.repo.UpdateStatus(ctx, orderCode, entities.StatusFailed, ""); err != nil {
			return VerifyResult{}, err
		}
		s.logger.WarnContext(ctx, "transaction does not match order",
			slog.String("order_code", orderCode),
			slog.String("transaction_id", transactionID),
			slog.String("viva_status", tx.StatusID))
		return VerifyResult{
			FailCode: FailOrderDataMismatch,
			Details: map[string]any{
				"expected_cents":      order.AmountCents,
				"viva_cents":          txCents,
				"expected_order_code": order.OrderCode,
				"viva_order_code":     txOrderCode,
				"viva_status":         tx.StatusID,
			},
		}, nil
	}

	transitioned, err := s.repo.UpdateStatus(ctx, orderCode, entities.StatusPaid, transactionID)
	if err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{
		OK:            true,
		Status:        string(entities.StatusPaid),
		TransactionID: transactionID,
		Transitioned:  transitioned,
	}, nil
}

func (s *reconcileService) markMismatch(ctx context.Context, orderCode string, details map[string]any) (VerifyResult, error) {
	if _, err := s.repo.UpdateStatus(ctx, orderCode, entities.StatusMismatch, ""); err != nil {
		return VerifyResult{}, err
	}
	s.logger.WarnContext(ctx, "order data mismatch",
		slog.String("order_code", orderCode), slog.Any("details", details))
	return VerifyResult{FailCode: FailOrderDataMismatch, Details: details}, nil
}
