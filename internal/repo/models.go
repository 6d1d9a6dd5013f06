package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/consultingshop/checkout-service/internal/entities"
)

type Order struct {
	OrderCode     string         `db:"order_code"`
	AmountCents   int64          `db:"amount_cents"`
	Status        string         `db:"status"`
	CustomerEmail sql.NullString `db:"customer_email"`
	CustomerName  sql.NullString `db:"customer_name"`
	Billing       []byte         `db:"billing"`
	TransactionID sql.NullString `db:"transaction_id"`
	CreatedAt     time.Time      `db:"created_at"`
	PaidAt        sql.NullTime   `db:"paid_at"`
}

type LineItem struct {
	OrderCode      string `db:"order_code"`
	ProductID      string `db:"product_id"`
	Title          string `db:"title"`
	UnitPriceCents int64  `db:"unit_price_cents"`
	Quantity       int    `db:"quantity"`
	TotalCents     int64  `db:"total_cents"`
}

type Product struct {
	ID         string `db:"id"`
	Title      string `db:"title"`
	PriceCents int64  `db:"price_cents"`
}

func LineItemToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		ProductID:      i.ProductID,
		Title:          i.Title,
		UnitPriceCents: i.UnitPriceCents,
		Quantity:       i.Quantity,
		TotalCents:     i.TotalCents,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		Title:      p.Title,
		PriceCents: p.PriceCents,
	}
}

func OrderToEntity(o Order, items []LineItem) (entities.Order, error) {
	order := entities.Order{
		OrderCode:     o.OrderCode,
		AmountCents:   o.AmountCents,
		Status:        entities.OrderStatus(o.Status),
		CustomerEmail: nullStringToString(o.CustomerEmail),
		CustomerName:  nullStringToString(o.CustomerName),
		TransactionID: nullStringToString(o.TransactionID),
		CreatedAt:     o.CreatedAt,
	}

	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time
		order.PaidAt = &paidAt
	}

	if len(o.Billing) > 0 {
		if err := json.Unmarshal(o.Billing, &order.Billing); err != nil {
			return entities.Order{}, fmt.Errorf("decode billing for order %s: %w", o.OrderCode, err)
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, LineItemToEntity(it))
		}
	}

	return order, nil
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
