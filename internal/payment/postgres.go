package payment

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

const paymentColumns = `id, reference_number, source_account_id, destination_account_id,
	amount, currency, idempotency_key, status,
	COALESCE(reservation_id, ''), COALESCE(transaction_id, ''), COALESCE(failure_reason, ''),
	created_at, updated_at, processed_at`

func (t *pgTx) Payment(ctx context.Context, id string) (*Payment, error) {
	return t.scan(t.tx.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE id = $1", id), id)
}

func (t *pgTx) PaymentForUpdate(ctx context.Context, id string) (*Payment, error) {
	return t.scan(t.tx.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE id = $1 FOR UPDATE", id), id)
}

func (t *pgTx) scan(row *sql.Row, id string) (*Payment, error) {
	var p Payment
	var processedAt sql.NullTime
	err := row.Scan(&p.ID, &p.ReferenceNumber, &p.SourceAccountID, &p.DestinationAccountID,
		&p.Amount, &p.Currency, &p.IdempotencyKey, &p.Status,
		&p.ReservationID, &p.TransactionID, &p.FailureReason,
		&p.CreatedAt, &p.UpdatedAt, &processedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fault.Newf(fault.CodeNotFound, "payment %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("payment scan failed: %w", err)
	}
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}
	return &p, nil
}

func (t *pgTx) Insert(ctx context.Context, p *Payment) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO payments (
			id, reference_number, source_account_id, destination_account_id,
			amount, currency, idempotency_key, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.ReferenceNumber, p.SourceAccountID, p.DestinationAccountID,
		p.Amount, p.Currency, p.IdempotencyKey, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fault.Newf(fault.CodeAlreadyExists, "payment %s already exists", p.ID)
		}
		return fmt.Errorf("payment insert failed: %w", err)
	}
	return nil
}

func (t *pgTx) Save(ctx context.Context, p *Payment) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE payments SET
			status = $2,
			reservation_id = NULLIF($3, ''),
			transaction_id = NULLIF($4, ''),
			failure_reason = NULLIF($5, ''),
			updated_at = $6,
			processed_at = $7
		WHERE id = $1
	`, p.ID, p.Status, p.ReservationID, p.TransactionID, p.FailureReason, p.UpdatedAt, p.ProcessedAt)
	if err != nil {
		return fmt.Errorf("payment update failed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fault.Newf(fault.CodeNotFound, "payment %s not found", p.ID)
	}
	return nil
}
