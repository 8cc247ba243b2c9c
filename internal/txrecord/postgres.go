package txrecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/driftpay/drift/internal/fault"
)

// PostgresStore is the production Store.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an existing handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// WithinTx opens one transaction, runs fn, and commits iff fn returns nil.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx failed: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&pgTx{tx: sqlTx}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

type pgTx struct {
	tx *sql.Tx
}

const transactionColumns = `id, reference_number, source_account_id, destination_account_id,
	amount, currency, status, payment_id, reservation_id, idempotency_key,
	COALESCE(failure_reason, ''), created_at, updated_at, completed_at`

func (t *pgTx) Transaction(ctx context.Context, id string) (*Transaction, error) {
	txn, err := t.scan(t.tx.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fault.Newf(fault.CodeNotFound, "transaction %s not found", id)
	}
	return txn, nil
}

func (t *pgTx) TransactionByIdempotencyKey(ctx context.Context, key string) (*Transaction, error) {
	return t.scan(t.tx.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE idempotency_key = $1", key))
}

func (t *pgTx) scan(row *sql.Row) (*Transaction, error) {
	var txn Transaction
	var completedAt sql.NullTime
	err := row.Scan(&txn.ID, &txn.ReferenceNumber, &txn.SourceAccountID, &txn.DestinationAccountID,
		&txn.Amount, &txn.Currency, &txn.Status, &txn.PaymentID, &txn.ReservationID,
		&txn.IdempotencyKey, &txn.FailureReason, &txn.CreatedAt, &txn.UpdatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transaction scan failed: %w", err)
	}
	if completedAt.Valid {
		txn.CompletedAt = &completedAt.Time
	}
	return &txn, nil
}

func (t *pgTx) Insert(ctx context.Context, txn *Transaction) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO transactions (
			id, reference_number, source_account_id, destination_account_id,
			amount, currency, status, payment_id, reservation_id,
			idempotency_key, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, txn.ID, txn.ReferenceNumber, txn.SourceAccountID, txn.DestinationAccountID,
		txn.Amount, txn.Currency, txn.Status, txn.PaymentID, txn.ReservationID,
		txn.IdempotencyKey, txn.CreatedAt, txn.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already recorded", txn.IdempotencyKey)
		}
		return fmt.Errorf("transaction insert failed: %w", err)
	}
	return nil
}

func (t *pgTx) Save(ctx context.Context, txn *Transaction) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE transactions SET
			status = $2,
			failure_reason = NULLIF($3, ''),
			updated_at = $4,
			completed_at = $5
		WHERE id = $1
	`, txn.ID, txn.Status, txn.FailureReason, txn.UpdatedAt, txn.CompletedAt)
	if err != nil {
		return fmt.Errorf("transaction update failed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fault.Newf(fault.CodeNotFound, "transaction %s not found", txn.ID)
	}
	return nil
}
