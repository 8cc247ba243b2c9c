package txrecord

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/events"
	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
	"github.com/driftpay/drift/internal/refnum"
)

// CreateInput carries everything CreateTransaction needs. The idempotency
// key comes from the payment record, never regenerated per attempt.
type CreateInput struct {
	PaymentID            string
	ReservationID        string
	SourceAccountID      string
	DestinationAccountID string
	Amount               money.Money
	IdempotencyKey       string
}

// Service owns the transaction rows and publishes a transaction event on
// every state change.
type Service struct {
	store  Store
	events events.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewService builds the service.
func NewService(store Store, pub events.Publisher, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		events: pub,
		log:    logger.With().Str("component", "txrecord_service").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the clock. Tests only.
func (s *Service) SetNow(now func() time.Time) { s.now = now }

// CreateTransaction records a PENDING audit row and emits
// TRANSACTION_CREATED. Replaying the same idempotency key returns the
// original row without a second event.
func (s *Service) CreateTransaction(ctx context.Context, in CreateInput) (*Transaction, error) {
	if in.PaymentID == "" || in.ReservationID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "payment_id and reservation_id are required")
	}
	if in.SourceAccountID == "" || in.DestinationAccountID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "source and destination accounts are required")
	}
	if in.IdempotencyKey == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "idempotency_key is required")
	}
	if err := in.Amount.Validate(); err != nil {
		return nil, fault.Wrap(fault.CodeInvalidArgument, "invalid amount", err)
	}

	var (
		txn      *Transaction
		replayed bool
	)
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		prior, err := tx.TransactionByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return err
		}
		if prior != nil {
			txn = prior
			replayed = true
			return nil
		}

		now := s.now()
		txn = &Transaction{
			ID:                   uuid.New().String(),
			ReferenceNumber:      refnum.New(refnum.TransactionPrefix, now),
			SourceAccountID:      in.SourceAccountID,
			DestinationAccountID: in.DestinationAccountID,
			Amount:               in.Amount.AmountMinor,
			Currency:             in.Amount.Currency,
			Status:               StatusPending,
			PaymentID:            in.PaymentID,
			ReservationID:        in.ReservationID,
			IdempotencyKey:       in.IdempotencyKey,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		return tx.Insert(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		s.log.Debug().
			Str("transaction_id", txn.ID).
			Str("idempotency_key", in.IdempotencyKey).
			Msg("transaction create replayed from idempotency key")
		return txn, nil
	}

	s.publish(ctx, txn, events.TransactionCreated)
	s.log.Info().
		Str("transaction_id", txn.ID).
		Str("payment_id", txn.PaymentID).
		Str("reference_number", txn.ReferenceNumber).
		Int64("amount", txn.Amount).
		Msg("transaction created")
	return txn, nil
}

// CompleteTransaction moves PENDING -> COMPLETED and emits
// TRANSACTION_COMPLETED.
func (s *Service) CompleteTransaction(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return fault.New(fault.CodeInvalidArgument, "transaction_id is required")
	}

	var txn *Transaction
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		t, err := tx.Transaction(ctx, transactionID)
		if err != nil {
			return err
		}
		if t.Status != StatusPending {
			return fault.Newf(fault.CodeFailedPrecondition, "transaction %s is %s, not PENDING", transactionID, t.Status)
		}

		now := s.now()
		t.Status = StatusCompleted
		t.CompletedAt = &now
		t.UpdatedAt = now
		if err := tx.Save(ctx, t); err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, txn, events.TransactionCompleted)
	s.log.Info().
		Str("transaction_id", txn.ID).
		Str("payment_id", txn.PaymentID).
		Msg("transaction completed")
	return nil
}

// FailTransaction moves PENDING -> FAILED, records the reason, and emits
// TRANSACTION_FAILED.
func (s *Service) FailTransaction(ctx context.Context, transactionID, reason string) error {
	if transactionID == "" {
		return fault.New(fault.CodeInvalidArgument, "transaction_id is required")
	}

	var txn *Transaction
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		t, err := tx.Transaction(ctx, transactionID)
		if err != nil {
			return err
		}
		if t.Status != StatusPending {
			return fault.Newf(fault.CodeFailedPrecondition, "transaction %s is %s, not PENDING", transactionID, t.Status)
		}

		t.Status = StatusFailed
		t.FailureReason = reason
		t.UpdatedAt = s.now()
		if err := tx.Save(ctx, t); err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, txn, events.TransactionFailed)
	s.log.Info().
		Str("transaction_id", txn.ID).
		Str("payment_id", txn.PaymentID).
		Str("reason", reason).
		Msg("transaction failed")
	return nil
}

// Transaction loads a row by id, for operator tooling.
func (s *Service) Transaction(ctx context.Context, transactionID string) (*Transaction, error) {
	if transactionID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "transaction_id is required")
	}
	var txn *Transaction
	err := s.store.WithinTx(ctx, func(tx Tx) error {
		t, err := tx.Transaction(ctx, transactionID)
		if err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) publish(ctx context.Context, t *Transaction, eventType string) {
	ev := events.TransactionEvent{
		TransactionID:        t.ID,
		ReferenceNumber:      t.ReferenceNumber,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Amount:               t.Amount,
		Currency:             t.Currency,
		TransactionType:      TypeTransfer,
		TransactionStatus:    string(t.Status),
		PaymentID:            t.PaymentID,
		Description:          "transfer " + t.SourceAccountID + " -> " + t.DestinationAccountID,
		FailureReason:        events.FailureReason(t.FailureReason),
	}
	ev.Stamp(eventType, s.now())
	s.events.PublishTransactionEvent(ctx, ev)
}
