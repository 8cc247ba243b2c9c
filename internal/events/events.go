// Package events publishes domain events for payments and transactions to
// two ordered streams.
//
// Delivery is at-least-once and best-effort: the producer retries transient
// broker errors, and on persistent failure the publisher logs and moves on.
// Payment correctness never depends on event delivery. Records are keyed by
// entity id (payment_id or transaction_id), which pins each entity to one
// partition and preserves per-entity publish order.
package events

import (
	"time"

	"github.com/google/uuid"
)

// EventVersion is stamped on every envelope.
const EventVersion = "1.0"

// Transaction event types.
const (
	TransactionCreated   = "TRANSACTION_CREATED"
	TransactionCompleted = "TRANSACTION_COMPLETED"
	TransactionFailed    = "TRANSACTION_FAILED"
)

// Payment event types.
const (
	PaymentInitiated  = "PAYMENT_INITIATED"
	PaymentProcessing = "PAYMENT_PROCESSING"
	PaymentCompleted  = "PAYMENT_COMPLETED"
	PaymentFailed     = "PAYMENT_FAILED"
	PaymentCancelled  = "PAYMENT_CANCELLED"
)

// TransactionEvent is the wire envelope for the transactions topic.
// Field names are part of the contract; do not rename.
type TransactionEvent struct {
	EventID              string  `json:"event_id"`
	EventType            string  `json:"event_type"`
	EventTimestamp       string  `json:"event_timestamp"` // RFC3339
	EventVersion         string  `json:"event_version"`
	TransactionID        string  `json:"transaction_id"`
	ReferenceNumber      string  `json:"reference_number"`
	SourceAccountID      string  `json:"source_account_id"`
	DestinationAccountID string  `json:"destination_account_id"`
	Amount               int64   `json:"amount"` // minor units
	Currency             string  `json:"currency"`
	TransactionType      string  `json:"transaction_type"`
	TransactionStatus    string  `json:"transaction_status"`
	PaymentID            string  `json:"payment_id"`
	Description          string  `json:"description"`
	FailureReason        *string `json:"failure_reason"`
}

// PaymentEvent is the wire envelope for the payments topic.
type PaymentEvent struct {
	EventID              string  `json:"event_id"`
	EventType            string  `json:"event_type"`
	EventTimestamp       string  `json:"event_timestamp"` // RFC3339
	EventVersion         string  `json:"event_version"`
	PaymentID            string  `json:"payment_id"`
	ReferenceNumber      string  `json:"reference_number"`
	SourceAccountID      string  `json:"source_account_id"`
	DestinationAccountID string  `json:"destination_account_id"`
	Amount               int64   `json:"amount"` // minor units
	Currency             string  `json:"currency"`
	PaymentType          string  `json:"payment_type"`
	PaymentStatus        string  `json:"payment_status"`
	ReservationID        string  `json:"reservation_id"`
	Description          string  `json:"description"`
	FailureReason        *string `json:"failure_reason"`
}

// Stamp fills the envelope metadata: a fresh event id, the event type, the
// current timestamp, and the envelope version.
func (e *TransactionEvent) Stamp(eventType string, now time.Time) {
	e.EventID = uuid.New().String()
	e.EventType = eventType
	e.EventTimestamp = now.UTC().Format(time.RFC3339)
	e.EventVersion = EventVersion
}

// Stamp fills the envelope metadata.
func (e *PaymentEvent) Stamp(eventType string, now time.Time) {
	e.EventID = uuid.New().String()
	e.EventType = eventType
	e.EventTimestamp = now.UTC().Format(time.RFC3339)
	e.EventVersion = EventVersion
}

// FailureReason wraps a non-empty reason as a nullable envelope field.
func FailureReason(reason string) *string {
	if reason == "" {
		return nil
	}
	return &reason
}
