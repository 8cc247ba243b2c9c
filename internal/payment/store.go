package payment

import "context"

// Store runs one unit of work against the payment rows; WithinTx commits
// iff fn returns nil. Status transitions re-read the row inside the unit,
// which is what keeps a concurrent cancel and a completing saga from both
// reaching a terminal state.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the capability set a unit of work sees.
type Tx interface {
	// Payment loads a row by id; CodeNotFound if absent.
	Payment(ctx context.Context, id string) (*Payment, error)
	// PaymentForUpdate loads the row under a write lock.
	PaymentForUpdate(ctx context.Context, id string) (*Payment, error)
	// Insert creates the row.
	Insert(ctx context.Context, p *Payment) error
	// Save updates mutable fields.
	Save(ctx context.Context, p *Payment) error
}
