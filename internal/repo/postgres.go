package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts a new pending order. Order codes are gateway-assigned
// and unique, a duplicate is an integration bug and reported as such rather
// than swallowed.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	billing, err := json.Marshal(o.Billing)
	if err != nil {
		return fmt.Errorf("encode billing: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns("order_code", "amount_cents", "status", "customer_email",
			"customer_name", "billing", "transaction_id").
		Values(
			o.OrderCode, o.AmountCents, string(entities.StatusPending),
			nullString(o.CustomerEmail), nullString(o.CustomerName),
			billing, nullString(o.TransactionID),
		).
		MustSql()

	_, err = r.execContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%w: %s", entities.ErrDuplicateOrder, o.OrderCode)
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// SaveLineItems bulk-inserts the purchase-time snapshots of an order's items.
// Idempotent via ON CONFLICT DO NOTHING, items are never updated afterwards.
func (r *postgresRepo) SaveLineItems(ctx context.Context, orderCode string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_code", "product_id", "title", "unit_price_cents", "quantity", "total_cents").
		Suffix("ON CONFLICT (order_code, product_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(orderCode, it.ProductID, it.Title, it.UnitPriceCents, it.Quantity, it.TotalCents)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert line items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByCode(ctx context.Context, orderCode string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_code", "amount_cents", "status", "customer_email",
		"customer_name", "billing", "transaction_id", "created_at", "paid_at").
		From("orders").
		Where(sq.Eq{"order_code": orderCode}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"order_code", "product_id", "title", "unit_price_cents", "quantity", "total_cents").
		From("order_items").
		Where(sq.Eq{"order_code": orderCode}).
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get line items: %w", err)
	}

	return OrderToEntity(order, items)
}

// UpdateStatus applies a status transition as one conditional statement so
// that concurrent verifications cannot interleave a read-then-write:
//   - terminal outcomes (paid, failed, expired, canceled, mismatch) are sticky;
//   - "error" may be superseded by any later verification;
//   - transaction_id and paid_at are first-writer-wins, never overwritten.
//
// Returns true when a transition actually happened now, false for a no-op
// (already in that status, or suppressed by a terminal state).
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderCode string, status entities.OrderStatus, transactionID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("transaction_id", sq.Expr("COALESCE(transaction_id, ?)", nullString(transactionID))).
		Set("paid_at", sq.Expr("CASE WHEN ? = 'paid' THEN COALESCE(paid_at, NOW()) ELSE paid_at END", string(status))).
		Where(sq.Eq{"order_code": orderCode}).
		Where(sq.Expr("status IN ('pending','error')")).
		Where(sq.NotEq{"status": string(status)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows > 0 {
		return true, nil
	}

	// no row changed: either the order does not exist or the transition
	// was suppressed (same status / sticky terminal state)
	query, args = r.qb.Select("1").From("orders").Where(sq.Eq{"order_code": orderCode}).MustSql()
	var one int
	err = r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, entities.ErrOrderNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return false, nil
}

// LatestOrders returns the most recent orders with their line items,
// for the back-office list screen.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"order_code", "amount_cents", "status", "customer_email",
		"customer_name", "billing", "transaction_id", "created_at", "paid_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	codes := make([]string, len(orders))
	for i, o := range orders {
		codes[i] = o.OrderCode
	}

	query, args = r.qb.Select(
		"order_code", "product_id", "title", "unit_price_cents", "quantity", "total_cents").
		From("order_items").
		Where(sq.Eq{"order_code": codes}).
		MustSql()

	var items []LineItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select line items: %w", err)
	}
	itemsMap := make(map[string][]LineItem, len(codes))
	for _, it := range items {
		itemsMap[it.OrderCode] = append(itemsMap[it.OrderCode], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, itemsMap[o.OrderCode])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
