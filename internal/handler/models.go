package handler

import (
	"time"

	"github.com/consultingshop/checkout-service/internal/entities"
	"github.com/consultingshop/checkout-service/internal/service"
)

// CheckoutRequest is the storefront checkout payload. Client-supplied prices
// and titles are advisory only, the pricer recomputes both server-side.
// An empty cart passes validation on purpose: the pricer rejects it and the
// handler answers with the stable "empty_cart" code.
type CheckoutRequest struct {
	Customer Customer         `json:"customer" validate:"required"`
	Items    []CartItem       `json:"items" validate:"dive"`
	Billing  entities.Billing `json:"billing"`
}

type Customer struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
}

type CartItem struct {
	ID             string `json:"id" validate:"required"`
	Qty            int    `json:"qty" validate:"gte=1"`
	UnitPriceCents int64  `json:"unit_price_cents,omitempty"`
	Title          string `json:"title,omitempty"`
}

// CheckoutResponse is returned on successful checkout creation
type CheckoutResponse struct {
	OK          bool   `json:"ok"`
	OrderCode   string `json:"order_code"`
	RedirectURL string `json:"redirect_url"`
}

// VerifyResponse is returned when verification reached a conclusive answer
type VerifyResponse struct {
	OK            bool   `json:"ok"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// FailureResponse carries a stable error code plus audit details
type FailureResponse struct {
	OK      bool           `json:"ok"`
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// Order represents a ledger order with its line items
type Order struct {
	OrderCode     string           `json:"order_code"`
	AmountCents   int64            `json:"amount_cents"`
	Status        string           `json:"status"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	CustomerName  string           `json:"customer_name,omitempty"`
	Billing       entities.Billing `json:"billing,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	Items         []LineItem       `json:"items,omitempty"`
}

// LineItem is a purchase-time product snapshot
type LineItem struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"total_cents"`
}

func CartItemsToService(items []CartItem) []service.CartItem {
	out := make([]service.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, service.CartItem{
			ProductID:      it.ID,
			Quantity:       it.Qty,
			UnitPriceCents: it.UnitPriceCents,
			Title:          it.Title,
		})
	}
	return out
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			ProductID:      it.ProductID,
			Title:          it.Title,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			TotalCents:     it.TotalCents,
		})
	}

	return Order{
		OrderCode:     o.OrderCode,
		AmountCents:   o.AmountCents,
		Status:        string(o.Status),
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		Billing:       o.Billing,
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
		PaidAt:        o.PaidAt,
		Items:         items,
	}
}
