package viva

import (
	"fmt"
	"math"

	"github.com/consultingshop/checkout-service/internal/entities"
)

// Gateway order state codes as reported by the orders API.
const (
	StatePending  = 0
	StateExpired  = 1
	StateCanceled = 2
	StatePaid     = 3
)

// TxStatusFinalized is the transaction statusId of a successfully
// captured payment.
const TxStatusFinalized = "F"

// MapState translates a gateway state code into a local order status.
// The second return value is false for codes outside the published table,
// callers must treat those as "unknown" and leave the ledger untouched.
func MapState(stateID int) (entities.OrderStatus, bool) {
	switch stateID {
	case StatePending:
		return entities.StatusPending, true
	case StateExpired:
		return entities.StatusExpired, true
	case StateCanceled:
		return entities.StatusCanceled, true
	case StatePaid:
		return entities.StatusPaid, true
	default:
		return "", false
	}
}

// ToCents converts a gateway amount in major currency units to minor units.
func ToCents(major float64) int64 {
	return int64(math.Round(major * 100))
}

type CreateOrderRequest struct {
	AmountCents   int64
	CustomerEmail string
	CustomerName  string
	MerchantRef   string
}

type CreatedOrder struct {
	OrderCode   string
	CheckoutURL string
}

// OrderState is the remote order as returned by the orders API.
// RequestAmount is in major currency units.
type OrderState struct {
	StateID        int     `json:"StateId"`
	RequestAmount  float64 `json:"RequestAmount"`
	SourceCode     string  `json:"SourceCode"`
	MerchantTrns   string  `json:"MerchantTrns"`
	CustomerTrns   string  `json:"CustomerTrns"`
	ExpirationDate string  `json:"ExpirationDate"`
	TransactionID  string  `json:"TransactionId"`
}

// TransactionState is the remote transaction as returned by the
// transactions API. Amount is in major currency units.
type TransactionState struct {
	StatusID  string  `json:"statusId"`
	OrderCode int64   `json:"orderCode"`
	Amount    float64 `json:"amount"`
	Email     string  `json:"email"`
	FullName  string  `json:"fullName"`
	InsDate   string  `json:"insDate"`
}

// RequestError is a non-2xx answer from the gateway.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("gateway request failed: status %d: %s", e.Status, e.Body)
}
