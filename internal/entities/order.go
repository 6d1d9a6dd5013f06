package entities

import (
	"errors"
	"time"
)

// OrderStatus is the local ledger status of a checkout order.
type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusPaid     OrderStatus = "paid"
	StatusFailed   OrderStatus = "failed"
	StatusExpired  OrderStatus = "expired"
	StatusCanceled OrderStatus = "canceled"
	StatusMismatch OrderStatus = "mismatch"
	StatusError    OrderStatus = "error"
)

// Terminal reports whether the status is a financial outcome that must not be
// overwritten. StatusError is excluded on purpose: it means "gateway did not
// know the order" and a later successful verification may supersede it.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusExpired, StatusCanceled, StatusMismatch:
		return true
	}
	return false
}

type Customer struct {
	Email    string
	FullName string
}

// LineItem is a purchase-time snapshot of a catalog product. Immutable after
// creation, corrections happen by creating a new order.
type LineItem struct {
	ProductID      string
	Title          string
	UnitPriceCents int64
	Quantity       int
	TotalCents     int64
}

type Order struct {
	OrderCode     string // assigned by the payment gateway, primary lookup key
	AmountCents   int64  // fixed at creation, never updated
	Status        OrderStatus
	CustomerEmail string
	CustomerName  string
	Billing       Billing
	TransactionID string
	CreatedAt     time.Time
	PaidAt        *time.Time

	Items []LineItem
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicateOrder  = errors.New("order code already exists")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("invalid catalog price")
)
