package ledger

import "context"

// Store is the persistence capability set the engine runs on. Implementations
// must make WithinTx a single atomic, serialized unit: either every write in
// fn is applied or none is, and units touching the same account do not
// interleave.
//
// Two implementations exist: PostgresStore (production) and MemoryStore
// (tests). The engine is polymorphic over the interface so the reservation
// logic is exercised identically against both.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the capability set available inside one transactional unit.
//
// Locking discipline: acquire the account row (AccountForUpdate) before
// touching that account's reservations. No locks survive the unit.
type Tx interface {
	// Account loads without locking; for read-only paths.
	Account(ctx context.Context, accountID string) (*Account, error)

	// AccountForUpdate loads and locks the account row for the remainder of
	// the unit. This lock is the per-account serialization point for every
	// balance decision.
	AccountForUpdate(ctx context.Context, accountID string) (*Account, error)

	SaveAccount(ctx context.Context, acct *Account) error

	// PendingReservationTotal sums the amounts of PENDING reservations on
	// the account. Expired and unexpired PENDING reservations count equally.
	PendingReservationTotal(ctx context.Context, accountID string) (int64, error)

	Reservation(ctx context.Context, id string) (*Reservation, error)

	// ReservationByIdempotencyKey returns the unique row for the key, or
	// (nil, nil) when no such reservation exists.
	ReservationByIdempotencyKey(ctx context.Context, key string) (*Reservation, error)

	// InsertReservation fails with a CodeAlreadyExists fault when the
	// idempotency key collides.
	InsertReservation(ctx context.Context, r *Reservation) error

	SaveReservation(ctx context.Context, r *Reservation) error
}
