// Package ledger implements the balance reservation engine: the authoritative
// owner of per-account balances and of the reservation state machine.
//
// Every operation runs inside exactly one store transaction. The account row
// lock taken at the top of each mutating operation serializes all balance
// decisions for that account, so the available balance computed inside the
// transaction is consistent with the decision made from it. Available balance
// is never materialized; it is recomputed as
//
//	balance - SUM(amount) over PENDING reservations
//
// on every read.
//
// Idempotency: ReserveBalance deduplicates on the caller's idempotency key
// and returns the original reservation id regardless of its current status —
// a duplicate caller is retrying the same original action. CreditBalance is
// NOT deduplicated by reference_id; the field is audit-only and a retried
// credit double-credits. Operators reconcile by reference_id.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
)

// DefaultReservationTTL is applied when the engine is built with a
// non-positive TTL.
const DefaultReservationTTL = 15 * time.Minute

// Balance is the result of a GetBalance call.
type Balance struct {
	Available int64
	Currency  string
}

// Engine is the reservation engine. Safe for concurrent use; all shared
// state lives in the Store.
type Engine struct {
	store Store
	cache *BalanceCache // optional read cache; nil disables
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

// NewEngine builds an engine over the given store. cache may be nil.
func NewEngine(store Store, cache *BalanceCache, reservationTTL time.Duration, logger zerolog.Logger) *Engine {
	if reservationTTL <= 0 {
		reservationTTL = DefaultReservationTTL
	}
	return &Engine{
		store: store,
		cache: cache,
		ttl:   reservationTTL,
		log:   logger.With().Str("component", "ledger_engine").Logger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the clock. Tests only.
func (e *Engine) SetNow(now func() time.Time) { e.now = now }

// GetBalance returns the available balance and currency of an account.
//
// The read cache, when configured, short-circuits the store; every mutating
// operation invalidates the cached entry, and Postgres remains authoritative
// for every decision the engine itself makes.
func (e *Engine) GetBalance(ctx context.Context, accountID string) (*Balance, error) {
	if accountID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "account_id is required")
	}

	if e.cache != nil {
		if b, ok := e.cache.Get(ctx, accountID); ok {
			return b, nil
		}
	}

	var bal *Balance
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		acct, err := tx.Account(ctx, accountID)
		if err != nil {
			return err
		}
		pending, err := tx.PendingReservationTotal(ctx, accountID)
		if err != nil {
			return err
		}
		bal = &Balance{Available: acct.Balance - pending, Currency: acct.Currency}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		e.cache.Set(ctx, accountID, bal)
	}
	return bal, nil
}

// ReserveBalance places a hold on the account's available balance.
//
// If a reservation with the same idempotency key already exists, its id is
// returned unchanged regardless of status, amount, or currency: the retry
// refers to the same original action. A fresh reservation is created PENDING
// with expires_at = now + ttl; expiry is recorded but never swept here.
func (e *Engine) ReserveBalance(ctx context.Context, accountID string, amount money.Money, idempotencyKey string) (string, error) {
	if accountID == "" {
		return "", fault.New(fault.CodeInvalidArgument, "account_id is required")
	}
	if idempotencyKey == "" {
		return "", fault.New(fault.CodeInvalidArgument, "idempotency_key is required")
	}
	if err := amount.Validate(); err != nil {
		return "", fault.Wrap(fault.CodeInvalidArgument, "invalid amount", err)
	}

	var reservationID string
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		if prior, err := tx.ReservationByIdempotencyKey(ctx, idempotencyKey); err != nil {
			return err
		} else if prior != nil {
			reservationID = prior.ID
			e.log.Debug().
				Str("account_id", accountID).
				Str("reservation_id", prior.ID).
				Str("idempotency_key", idempotencyKey).
				Str("status", string(prior.Status)).
				Msg("reserve replayed from idempotency key")
			return nil
		}

		acct, err := tx.AccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if !acct.Active {
			return fault.Newf(fault.CodeFailedPrecondition, "account %s is inactive", accountID)
		}
		if acct.Currency != amount.Currency {
			return fault.Newf(fault.CodeInvalidArgument, "currency mismatch: account holds %s, requested %s", acct.Currency, amount.Currency)
		}

		pending, err := tx.PendingReservationTotal(ctx, accountID)
		if err != nil {
			return err
		}
		available := acct.Balance - pending
		if available < amount.AmountMinor {
			return fault.Newf(fault.CodeFailedPrecondition, "insufficient funds: available %d, requested %d", available, amount.AmountMinor)
		}

		now := e.now()
		res := &Reservation{
			ID:             uuid.New().String(),
			AccountID:      accountID,
			Amount:         amount.AmountMinor,
			Currency:       amount.Currency,
			Status:         ReservationPending,
			IdempotencyKey: idempotencyKey,
			ExpiresAt:      now.Add(e.ttl),
			CreatedAt:      now,
		}
		if err := tx.InsertReservation(ctx, res); err != nil {
			return err
		}
		reservationID = res.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	e.invalidate(ctx, accountID)
	e.log.Info().
		Str("account_id", accountID).
		Str("reservation_id", reservationID).
		Int64("amount", amount.AmountMinor).
		Str("currency", amount.Currency).
		Msg("balance reserved")
	return reservationID, nil
}

// CommitReservation moves the reserved money out of the account and marks
// the reservation COMMITTED. The negative-balance guard must never fire
// while reservation accounting holds; it exists so a broken invariant
// surfaces as a refusal instead of a negative balance.
func (e *Engine) CommitReservation(ctx context.Context, reservationID, transactionID string) error {
	if reservationID == "" {
		return fault.New(fault.CodeInvalidArgument, "reservation_id is required")
	}
	if transactionID == "" {
		return fault.New(fault.CodeInvalidArgument, "transaction_id is required")
	}

	var accountID string
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		res, err := tx.Reservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Status != ReservationPending {
			return fault.Newf(fault.CodeFailedPrecondition, "reservation %s is %s, not PENDING", reservationID, res.Status)
		}

		acct, err := tx.AccountForUpdate(ctx, res.AccountID)
		if err != nil {
			return err
		}
		newBalance := acct.Balance - res.Amount
		if newBalance < 0 {
			return fault.Newf(fault.CodeFailedPrecondition, "insufficient funds: committing %d would drive balance %d negative", res.Amount, acct.Balance)
		}

		acct.Balance = newBalance
		if err := tx.SaveAccount(ctx, acct); err != nil {
			return err
		}

		now := e.now()
		res.Status = ReservationCommitted
		res.TransactionID = transactionID
		res.CommittedAt = &now
		if err := tx.SaveReservation(ctx, res); err != nil {
			return err
		}
		accountID = res.AccountID
		return nil
	})
	if err != nil {
		return err
	}

	e.invalidate(ctx, accountID)
	e.log.Info().
		Str("reservation_id", reservationID).
		Str("transaction_id", transactionID).
		Str("account_id", accountID).
		Msg("reservation committed")
	return nil
}

// ReleaseReservation lifts a PENDING hold. No balance moves: the money was
// only withheld from available, never deducted.
func (e *Engine) ReleaseReservation(ctx context.Context, reservationID, reason string) error {
	if reservationID == "" {
		return fault.New(fault.CodeInvalidArgument, "reservation_id is required")
	}

	var accountID string
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		res, err := tx.Reservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if res.Status != ReservationPending {
			return fault.Newf(fault.CodeFailedPrecondition, "reservation %s is %s, not PENDING", reservationID, res.Status)
		}

		now := e.now()
		res.Status = ReservationReleased
		res.ReleaseReason = reason
		res.ReleasedAt = &now
		if err := tx.SaveReservation(ctx, res); err != nil {
			return err
		}
		accountID = res.AccountID
		return nil
	})
	if err != nil {
		return err
	}

	e.invalidate(ctx, accountID)
	e.log.Info().
		Str("reservation_id", reservationID).
		Str("account_id", accountID).
		Str("reason", reason).
		Msg("reservation released")
	return nil
}

// CreditBalance adds funds to an account and returns the new balance.
// reference_id is recorded for audit only; see the package comment on
// idempotency.
func (e *Engine) CreditBalance(ctx context.Context, accountID string, amount money.Money, referenceID string) (int64, error) {
	if accountID == "" {
		return 0, fault.New(fault.CodeInvalidArgument, "account_id is required")
	}
	if referenceID == "" {
		return 0, fault.New(fault.CodeInvalidArgument, "reference_id is required")
	}
	if err := amount.Validate(); err != nil {
		return 0, fault.Wrap(fault.CodeInvalidArgument, "invalid amount", err)
	}

	var newBalance int64
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		acct, err := tx.AccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if !acct.Active {
			return fault.Newf(fault.CodeFailedPrecondition, "account %s is inactive", accountID)
		}
		if acct.Currency != amount.Currency {
			return fault.Newf(fault.CodeInvalidArgument, "currency mismatch: account holds %s, requested %s", acct.Currency, amount.Currency)
		}
		acct.Balance += amount.AmountMinor
		if err := tx.SaveAccount(ctx, acct); err != nil {
			return err
		}
		newBalance = acct.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.invalidate(ctx, accountID)
	e.log.Info().
		Str("account_id", accountID).
		Int64("amount", amount.AmountMinor).
		Str("reference_id", referenceID).
		Int64("new_balance", newBalance).
		Msg("balance credited")
	return newBalance, nil
}

// GetReservation returns a reservation by id. Read-only; no lock is taken.
func (e *Engine) GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	if reservationID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "reservation_id is required")
	}

	var res *Reservation
	err := e.store.WithinTx(ctx, func(tx Tx) error {
		var err error
		res, err = tx.Reservation(ctx, reservationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) invalidate(ctx context.Context, accountID string) {
	if e.cache != nil && accountID != "" {
		e.cache.Invalidate(ctx, accountID)
	}
}
