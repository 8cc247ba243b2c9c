// Package txrecord is the append-only transaction record store: one audit
// row per payment attempt, advancing PENDING -> COMPLETED or PENDING ->
// FAILED and never transitioning out of a terminal state.
package txrecord

import "time"

// Status is the transaction state machine.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// TypeTransfer is the only transaction type drift records today.
const TypeTransfer = "TRANSFER"

// Transaction is one audit entry for a payment.
type Transaction struct {
	ID                   string
	ReferenceNumber      string
	SourceAccountID      string
	DestinationAccountID string
	Amount               int64 // minor units
	Currency             string
	Status               Status
	PaymentID            string
	ReservationID        string
	IdempotencyKey       string
	FailureReason        string // set iff FAILED
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CompletedAt          *time.Time // set iff COMPLETED
}

// Terminal reports whether the transaction can no longer transition.
func (t *Transaction) Terminal() bool {
	return t.Status != StatusPending
}
