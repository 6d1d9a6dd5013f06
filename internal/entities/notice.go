package entities

import "time"

// PaymentNotice is the event published when an order transitions into paid.
// The mail worker that renders the confirmation email consumes it elsewhere.
type PaymentNotice struct {
	OrderCode     string
	AmountCents   int64
	CustomerEmail string
	CustomerName  string
	TransactionID string
	PaidAt        time.Time
}
