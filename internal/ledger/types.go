package ledger

import "time"

// Account is a balance-bearing internal account. The currency is fixed at
// creation; deactivated accounts reject reservations and credits.
type Account struct {
	ID       string
	Currency string
	Balance  int64 // minor units, never negative
	Active   bool
}

// ReservationStatus is the reservation state machine:
//
//	PENDING --Commit--> COMMITTED (terminal)
//	PENDING --Release-> RELEASED  (terminal)
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationCommitted ReservationStatus = "COMMITTED"
	ReservationReleased  ReservationStatus = "RELEASED"
)

// Reservation is a hold on an account's funds. It withholds the amount from
// the available balance without moving money; money moves only on commit.
// Reservations are never deleted (audit trail).
type Reservation struct {
	ID             string
	AccountID      string
	Amount         int64 // minor units, > 0
	Currency       string
	Status         ReservationStatus
	IdempotencyKey string
	TransactionID  string // set on commit
	ReleaseReason  string // set on release
	ExpiresAt      time.Time
	CreatedAt      time.Time
	CommittedAt    *time.Time
	ReleasedAt     *time.Time
}

// Terminal reports whether the reservation can no longer transition.
func (r *Reservation) Terminal() bool {
	return r.Status != ReservationPending
}
