// Package payment drives the payment saga: reserve funds at the source,
// record an audit transaction, credit the destination, commit the
// reservation, and complete the record, with per-step compensations on
// failure.
package payment

import "time"

// Status is the payment state machine.
//
//	PENDING --> PROCESSING --> COMPLETED (terminal)
//	   |            |--------> FAILED    (terminal)
//	   |            |--------> CANCELLED (terminal)
//	   +---------------------> CANCELLED
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// TypeTransfer is the only payment type drift orchestrates today.
const TypeTransfer = "TRANSFER"

// Payment is the orchestrator's record of one transfer. The idempotency key
// minted at creation is the single source of the keys threaded through every
// outbound call, so a re-run of a stuck payment converges instead of
// double-acting.
type Payment struct {
	ID                   string
	ReferenceNumber      string
	SourceAccountID      string
	DestinationAccountID string
	Amount               int64 // minor units
	Currency             string
	IdempotencyKey       string
	Status               Status
	ReservationID        string // set after the reserve step
	TransactionID        string // set after the record step
	FailureReason        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ProcessedAt          *time.Time // set on completion
}

// Terminal reports whether the payment can no longer transition.
func (p *Payment) Terminal() bool {
	return p.Status == StatusCompleted || p.Status == StatusFailed || p.Status == StatusCancelled
}
