package purchases

import "fmt"

// Payment methods accepted at checkout.
const (
	PaymentMethodCash       = "cash"
	PaymentMethodCreditCard = "credit card"
)

// Purchase is one append-only ledger record. PurchaseID is the ledger length
// at insertion time; records are never mutated or deleted, so IDs are stable.
// Timestamp is epoch milliseconds at submission.
type Purchase struct {
	PurchaseID    int      `json:"purchaseId"`
	ConcertID     int      `json:"concertId"`
	Seats         []string `json:"seats"`
	PaymentMethod string   `json:"paymentMethod"`
	Timestamp     int64    `json:"timestamp"`
}

// PurchaseRequest is the form payload of POST /purchase. Seats arrives as a
// JSON array of seat strings encoded into a single form field.
type PurchaseRequest struct {
	ConcertID     string `form:"concertId" binding:"required"`
	Seats         string `form:"seats" binding:"required"`
	PaymentMethod string `form:"paymentMethod" binding:"required"`
}

// SeatErrorReason distinguishes the two ways a requested seat can be rejected.
type SeatErrorReason int

const (
	// SeatInvalidFormat means the token does not look like a seat at all.
	SeatInvalidFormat SeatErrorReason = iota
	// SeatUnavailable means the seat is well-formed but not in the inventory.
	SeatUnavailable
)

// SeatError reports the first seat in a request that failed validation.
type SeatError struct {
	Seat   string
	Reason SeatErrorReason
}

func (e *SeatError) Error() string {
	switch e.Reason {
	case SeatInvalidFormat:
		return fmt.Sprintf("%q is not a valid seat.", e.Seat)
	default:
		return fmt.Sprintf("%q is not available at this concert.", e.Seat)
	}
}
