package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/driftpay/drift/internal/fault"
)

// PostgresStore is the production Store.
//
// Serialization choice (documented requirement): every WithinTx unit is one
// SQL transaction, and mutating operations take SELECT ... FOR UPDATE on the
// account row before reading pending reservations. The row lock is the
// per-account serialization point, so the check-then-insert in
// ReserveBalance cannot interleave with a concurrent reservation or commit
// on the same account. Plain autocommit of the two statements would not be
// enough.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects with the pool tuned for short transactional bursts.
func OpenPostgres(url string, maxConns int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("postgres open failed: %w", err)
	}
	if maxConns <= 0 {
		maxConns = 25
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing handle (shared pools, tests).
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// DB exposes the handle for health probes and the seeder.
func (s *PostgresStore) DB() *sql.DB { return s.db }

func (s *PostgresStore) Close() error { return s.db.Close() }

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

const accountColumns = "id, currency, balance, active"

func (t *pgTx) Account(ctx context.Context, accountID string) (*Account, error) {
	return t.scanAccount(t.tx.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = $1", accountID), accountID)
}

func (t *pgTx) AccountForUpdate(ctx context.Context, accountID string) (*Account, error) {
	return t.scanAccount(t.tx.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = $1 FOR UPDATE", accountID), accountID)
}

func (t *pgTx) scanAccount(row *sql.Row, accountID string) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Currency, &a.Balance, &a.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fault.Newf(fault.CodeNotFound, "account %s not found", accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("account scan failed: %w", err)
	}
	return &a, nil
}

func (t *pgTx) SaveAccount(ctx context.Context, acct *Account) error {
	res, err := t.tx.ExecContext(ctx,
		"UPDATE accounts SET balance = $2, active = $3 WHERE id = $1",
		acct.ID, acct.Balance, acct.Active)
	if err != nil {
		return fmt.Errorf("account update failed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fault.Newf(fault.CodeNotFound, "account %s not found", acct.ID)
	}
	return nil
}

func (t *pgTx) PendingReservationTotal(ctx context.Context, accountID string) (int64, error) {
	var total int64
	err := t.tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM reservations
		WHERE account_id = $1 AND status = $2
	`, accountID, ReservationPending).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("pending total query failed: %w", err)
	}
	return total, nil
}

const reservationColumns = `id, account_id, amount, currency, status, idempotency_key,
	COALESCE(transaction_id, ''), COALESCE(release_reason, ''),
	expires_at, created_at, committed_at, released_at`

func (t *pgTx) Reservation(ctx context.Context, id string) (*Reservation, error) {
	res, err := t.scanReservation(t.tx.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fault.Newf(fault.CodeNotFound, "reservation %s not found", id)
	}
	return res, nil
}

func (t *pgTx) ReservationByIdempotencyKey(ctx context.Context, key string) (*Reservation, error) {
	return t.scanReservation(t.tx.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE idempotency_key = $1", key))
}

func (t *pgTx) scanReservation(row *sql.Row) (*Reservation, error) {
	var r Reservation
	var committedAt, releasedAt sql.NullTime
	err := row.Scan(&r.ID, &r.AccountID, &r.Amount, &r.Currency, &r.Status, &r.IdempotencyKey,
		&r.TransactionID, &r.ReleaseReason, &r.ExpiresAt, &r.CreatedAt, &committedAt, &releasedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reservation scan failed: %w", err)
	}
	if committedAt.Valid {
		r.CommittedAt = &committedAt.Time
	}
	if releasedAt.Valid {
		r.ReleasedAt = &releasedAt.Time
	}
	return &r, nil
}

func (t *pgTx) InsertReservation(ctx context.Context, r *Reservation) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO reservations (
			id, account_id, amount, currency, status,
			idempotency_key, expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID, r.AccountID, r.Amount, r.Currency, r.Status,
		r.IdempotencyKey, r.ExpiresAt, r.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already reserved", r.IdempotencyKey)
		}
		return fmt.Errorf("reservation insert failed: %w", err)
	}
	return nil
}

func (t *pgTx) SaveReservation(ctx context.Context, r *Reservation) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE reservations SET
			status = $2,
			transaction_id = NULLIF($3, ''),
			release_reason = NULLIF($4, ''),
			committed_at = $5,
			released_at = $6
		WHERE id = $1
	`, r.ID, r.Status, r.TransactionID, r.ReleaseReason, r.CommittedAt, r.ReleasedAt)
	if err != nil {
		return fmt.Errorf("reservation update failed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fault.Newf(fault.CodeNotFound, "reservation %s not found", r.ID)
	}
	return nil
}
