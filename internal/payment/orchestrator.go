package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driftpay/drift/internal/events"
	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
	"github.com/driftpay/drift/internal/refnum"
)

// PartialCommitAnomaly is the distinguished failure reason recorded when the
// destination credit succeeded but the reservation commit did not complete
// observably. The reason carries payment, reservation, and transaction ids
// so an operator can retry the commit and reach a consistent state.
const PartialCommitAnomaly = "PARTIAL_COMMIT_ANOMALY"

// releaseReasonCancelled is recorded on reservations released by a cancel.
const releaseReasonCancelled = "user cancellation"

// Orchestrator drives the payment saga against the ledger and transaction
// services. It owns the payment rows; every status transition re-reads the
// row under a write lock, which keeps a concurrent cancel and a completing
// saga from both reaching a terminal state.
type Orchestrator struct {
	store  Store
	ledger LedgerClient
	txrec  TxRecordClient
	events events.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

// NewOrchestrator builds the orchestrator.
func NewOrchestrator(store Store, ledger LedgerClient, txrec TxRecordClient, pub events.Publisher, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:  store,
		ledger: ledger,
		txrec:  txrec,
		events: pub,
		log:    logger.With().Str("component", "payment_orchestrator").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the clock. Tests only.
func (o *Orchestrator) SetNow(now func() time.Time) { o.now = now }

// CreatePayment validates the transfer, verifies both accounts against the
// ledger, persists a PENDING payment with a fresh reference number and
// idempotency key, and emits PAYMENT_INITIATED.
func (o *Orchestrator) CreatePayment(ctx context.Context, sourceID, destinationID string, amount money.Money) (*Payment, error) {
	if sourceID == "" || destinationID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "source and destination accounts are required")
	}
	if sourceID == destinationID {
		return nil, fault.New(fault.CodeInvalidArgument, "source and destination accounts must differ")
	}
	if err := amount.Validate(); err != nil {
		return nil, fault.Wrap(fault.CodeInvalidArgument, "invalid amount", err)
	}

	// GetBalance doubles as the existence probe; it also hands back the
	// account currency, so a mismatched transfer fails here instead of
	// mid-saga.
	src, err := o.ledger.GetBalance(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	dst, err := o.ledger.GetBalance(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if src.Currency != amount.Currency {
		return nil, fault.Newf(fault.CodeInvalidArgument, "currency mismatch: source holds %s, requested %s", src.Currency, amount.Currency)
	}
	if dst.Currency != amount.Currency {
		return nil, fault.Newf(fault.CodeInvalidArgument, "currency mismatch: destination holds %s, requested %s", dst.Currency, amount.Currency)
	}

	now := o.now()
	p := &Payment{
		ID:                   uuid.New().String(),
		ReferenceNumber:      refnum.New(refnum.PaymentPrefix, now),
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               amount.AmountMinor,
		Currency:             amount.Currency,
		IdempotencyKey:       uuid.New().String(),
		Status:               StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	err = o.store.WithinTx(ctx, func(tx Tx) error {
		return tx.Insert(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, p, events.PaymentInitiated)
	o.log.Info().
		Str("payment_id", p.ID).
		Str("reference_number", p.ReferenceNumber).
		Str("source_account_id", sourceID).
		Str("destination_account_id", destinationID).
		Int64("amount", amount.AmountMinor).
		Str("currency", amount.Currency).
		Msg("payment created")
	return p, nil
}

// ProcessPayment runs the saga for a PENDING payment:
//
//	reserve source funds -> create transaction record -> credit destination
//	-> commit reservation -> complete transaction record
//
// Each step that fails triggers the compensations owed for the progress made
// so far, best-effort: each compensating call is tried once, and a
// compensation failure is appended to the failure reason as a rollback
// warning. A commit failure after a successful credit is the partial commit
// anomaly; nothing is rolled back and the failure reason records every id
// needed to reconcile.
//
// On saga failure the FAILED payment is returned together with the causing
// fault.
func (o *Orchestrator) ProcessPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "payment_id is required")
	}

	// Step 0: PENDING -> PROCESSING.
	p, err := o.transition(ctx, paymentID, func(p *Payment) error {
		if p.Status != StatusPending {
			return fault.Newf(fault.CodeInvalidArgument, "payment %s is %s, only PENDING payments can be processed", paymentID, p.Status)
		}
		p.Status = StatusProcessing
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.publish(ctx, p, events.PaymentProcessing)
	amount := money.New(p.Amount, p.Currency)

	// Step 1: reserve source funds. The payment's idempotency key makes a
	// re-run of a stuck payment replay the same reservation. Nothing is
	// held yet, so failure owes no compensation.
	reservationID, err := o.ledger.ReserveBalance(ctx, p.SourceAccountID, amount, p.IdempotencyKey)
	if err != nil {
		return o.failPayment(ctx, p, fmt.Sprintf("reserve failed: %v", err)), err
	}
	p, err = o.recordProgress(ctx, p.ID, func(p *Payment) { p.ReservationID = reservationID })
	if err != nil {
		o.abandonReservation(ctx, reservationID, "payment no longer processing")
		return p, err
	}

	// Step 2: create the audit transaction. Failure releases the hold.
	transactionID, _, err := o.txrec.CreateTransaction(ctx, CreateTransactionInput{
		PaymentID:            p.ID,
		ReservationID:        p.ReservationID,
		SourceAccountID:      p.SourceAccountID,
		DestinationAccountID: p.DestinationAccountID,
		Amount:               amount,
		IdempotencyKey:       p.IdempotencyKey,
	})
	if err != nil {
		reason := fmt.Sprintf("transaction create failed: %v", err)
		if rbErr := o.ledger.ReleaseReservation(ctx, p.ReservationID, "tx-create-failed"); rbErr != nil {
			o.log.Error().Err(rbErr).Str("payment_id", p.ID).Str("reservation_id", p.ReservationID).Msg("rollback release failed")
			reason += " (WARNING: failed to roll back reservation)"
		}
		return o.failPayment(ctx, p, reason), err
	}
	p, err = o.recordProgress(ctx, p.ID, func(p *Payment) { p.TransactionID = transactionID })
	if err != nil {
		o.abandonReservation(ctx, p.ReservationID, "payment no longer processing")
		return p, err
	}

	// Step 3: credit the destination. Failure fails the transaction record
	// and releases the hold.
	if _, err := o.ledger.CreditBalance(ctx, p.DestinationAccountID, amount, p.TransactionID); err != nil {
		reason := fmt.Sprintf("credit failed: %v", err)
		if rbErr := o.txrec.FailTransaction(ctx, p.TransactionID, reason); rbErr != nil {
			o.log.Error().Err(rbErr).Str("payment_id", p.ID).Str("transaction_id", p.TransactionID).Msg("rollback fail-transaction failed")
			reason += " (WARNING: failed to roll back transaction)"
		}
		if rbErr := o.ledger.ReleaseReservation(ctx, p.ReservationID, reason); rbErr != nil {
			o.log.Error().Err(rbErr).Str("payment_id", p.ID).Str("reservation_id", p.ReservationID).Msg("rollback release failed")
			reason += " (WARNING: failed to roll back reservation)"
		}
		return o.failPayment(ctx, p, reason), err
	}

	// Step 4: commit the reservation. The credit already happened, so a
	// failure here is the partial commit anomaly: do not debit the
	// destination back, do not release. The ledger's reservation status
	// stays authoritative; a later retry of the commit with the same
	// transaction id converges.
	if err := o.ledger.CommitReservation(ctx, p.ReservationID, p.TransactionID); err != nil {
		reason := fmt.Sprintf("%s: commit failed for payment=%s reservation=%s transaction=%s: %v",
			PartialCommitAnomaly, p.ID, p.ReservationID, p.TransactionID, err)
		o.log.Error().
			Str("payment_id", p.ID).
			Str("reservation_id", p.ReservationID).
			Str("transaction_id", p.TransactionID).
			Err(err).
			Msg("partial commit anomaly: credit applied, commit failed")
		return o.failPayment(ctx, p, reason), err
	}

	// Step 5: complete the record and the payment. A completion failure is
	// not rolled back; the payment stays PROCESSING for manual completion.
	if err := o.txrec.CompleteTransaction(ctx, p.TransactionID); err != nil {
		o.log.Warn().Err(err).
			Str("payment_id", p.ID).
			Str("transaction_id", p.TransactionID).
			Msg("transaction completion failed, payment left PROCESSING")
		return p, nil
	}

	p, err = o.transition(ctx, p.ID, func(p *Payment) error {
		if p.Status != StatusProcessing {
			return fault.Newf(fault.CodeFailedPrecondition, "payment %s is %s, not PROCESSING", p.ID, p.Status)
		}
		now := o.now()
		p.Status = StatusCompleted
		p.ProcessedAt = &now
		return nil
	})
	if err != nil {
		// Funds already moved under a payment that left PROCESSING
		// underneath us. Refuse the terminal transition and escalate.
		o.log.Error().Err(err).Str("payment_id", paymentID).Msg("funds moved but payment could not be completed")
		return p, err
	}

	o.publish(ctx, p, events.PaymentCompleted)
	o.log.Info().
		Str("payment_id", p.ID).
		Str("reservation_id", p.ReservationID).
		Str("transaction_id", p.TransactionID).
		Msg("payment completed")
	return p, nil
}

// CancelPayment cancels a PENDING or PROCESSING payment, releasing the
// reservation best-effort if one was placed, and emits PAYMENT_CANCELLED.
func (o *Orchestrator) CancelPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "payment_id is required")
	}

	p, err := o.transition(ctx, paymentID, func(p *Payment) error {
		if p.Status != StatusPending && p.Status != StatusProcessing {
			return fault.Newf(fault.CodeInvalidArgument, "payment %s is %s, only PENDING or PROCESSING payments can be cancelled", paymentID, p.Status)
		}
		p.Status = StatusCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.ReservationID != "" {
		if rbErr := o.ledger.ReleaseReservation(ctx, p.ReservationID, releaseReasonCancelled); rbErr != nil {
			o.log.Warn().Err(rbErr).
				Str("payment_id", p.ID).
				Str("reservation_id", p.ReservationID).
				Msg("release on cancel failed")
		}
	}

	o.publish(ctx, p, events.PaymentCancelled)
	o.log.Info().Str("payment_id", p.ID).Msg("payment cancelled")
	return p, nil
}

// GetPayment loads a payment by id.
func (o *Orchestrator) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, fault.New(fault.CodeInvalidArgument, "payment_id is required")
	}
	var p *Payment
	err := o.store.WithinTx(ctx, func(tx Tx) error {
		loaded, err := tx.Payment(ctx, paymentID)
		if err != nil {
			return err
		}
		p = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// transition re-reads the payment under a write lock, applies mutate, and
// persists. mutate validates the from-status and returns a fault when the
// transition is not allowed.
func (o *Orchestrator) transition(ctx context.Context, paymentID string, mutate func(p *Payment) error) (*Payment, error) {
	var out *Payment
	err := o.store.WithinTx(ctx, func(tx Tx) error {
		p, err := tx.PaymentForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := mutate(p); err != nil {
			out = p
			return err
		}
		p.UpdatedAt = o.now()
		if err := tx.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return out, err
	}
	return out, nil
}

// recordProgress persists a saga-step result, requiring that the payment is
// still PROCESSING. A concurrent cancel makes this fail, which stops the
// saga before any money moves.
func (o *Orchestrator) recordProgress(ctx context.Context, paymentID string, set func(p *Payment)) (*Payment, error) {
	return o.transition(ctx, paymentID, func(p *Payment) error {
		if p.Status != StatusProcessing {
			return fault.Newf(fault.CodeFailedPrecondition, "payment %s is %s, no longer PROCESSING", paymentID, p.Status)
		}
		set(p)
		return nil
	})
}

// failPayment marks the payment FAILED with the reason, emits
// PAYMENT_FAILED, and returns the updated row. A payment that already left
// PROCESSING (a concurrent cancel) is returned as-is.
func (o *Orchestrator) failPayment(ctx context.Context, p *Payment, reason string) *Payment {
	failed, err := o.transition(ctx, p.ID, func(p *Payment) error {
		if p.Status != StatusPending && p.Status != StatusProcessing {
			return fault.Newf(fault.CodeFailedPrecondition, "payment %s is already %s", p.ID, p.Status)
		}
		p.Status = StatusFailed
		p.FailureReason = reason
		return nil
	})
	if err != nil {
		o.log.Warn().Err(err).Str("payment_id", p.ID).Str("reason", reason).Msg("could not mark payment failed")
		if failed != nil {
			return failed
		}
		return p
	}

	o.publish(ctx, failed, events.PaymentFailed)
	o.log.Info().Str("payment_id", failed.ID).Str("reason", reason).Msg("payment failed")
	return failed
}

// abandonReservation releases a hold the saga can no longer use,
// best-effort.
func (o *Orchestrator) abandonReservation(ctx context.Context, reservationID, reason string) {
	if reservationID == "" {
		return
	}
	if err := o.ledger.ReleaseReservation(ctx, reservationID, reason); err != nil {
		o.log.Warn().Err(err).Str("reservation_id", reservationID).Msg("reservation release failed")
	}
}

func (o *Orchestrator) publish(ctx context.Context, p *Payment, eventType string) {
	ev := events.PaymentEvent{
		PaymentID:            p.ID,
		ReferenceNumber:      p.ReferenceNumber,
		SourceAccountID:      p.SourceAccountID,
		DestinationAccountID: p.DestinationAccountID,
		Amount:               p.Amount,
		Currency:             p.Currency,
		PaymentType:          TypeTransfer,
		PaymentStatus:        string(p.Status),
		ReservationID:        p.ReservationID,
		Description:          "payment " + p.SourceAccountID + " -> " + p.DestinationAccountID,
		FailureReason:        events.FailureReason(p.FailureReason),
	}
	ev.Stamp(eventType, o.now())
	o.events.PublishPaymentEvent(ctx, ev)
}
