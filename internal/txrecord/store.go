package txrecord

import "context"

// Store runs one unit of work against the transaction rows. Like the ledger
// store, WithinTx commits iff fn returns nil.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the capability set a unit of work sees.
type Tx interface {
	// Transaction loads a row by id; CodeNotFound if absent.
	Transaction(ctx context.Context, id string) (*Transaction, error)
	// TransactionByIdempotencyKey returns (nil, nil) when no row carries
	// the key.
	TransactionByIdempotencyKey(ctx context.Context, key string) (*Transaction, error)
	// Insert creates the row; CodeAlreadyExists on an idempotency-key
	// collision so the caller can re-read and replay.
	Insert(ctx context.Context, t *Transaction) error
	// Save updates status and terminal metadata.
	Save(ctx context.Context, t *Transaction) error
}
