package payment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftpay/drift/internal/events"
	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/ledger"
	"github.com/driftpay/drift/internal/money"
	"github.com/driftpay/drift/internal/txrecord"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

// ledgerBridge runs the real reservation engine in-process behind the
// LedgerClient interface, with per-call fault injection.
type ledgerBridge struct {
	engine *ledger.Engine

	failReserve error
	failCredit  error
	failCommit  error
	failRelease error
}

func (b *ledgerBridge) GetBalance(ctx context.Context, accountID string) (money.Money, error) {
	bal, err := b.engine.GetBalance(ctx, accountID)
	if err != nil {
		return money.Money{}, err
	}
	return money.New(bal.Available, bal.Currency), nil
}

func (b *ledgerBridge) ReserveBalance(ctx context.Context, accountID string, amount money.Money, idempotencyKey string) (string, error) {
	if b.failReserve != nil {
		return "", b.failReserve
	}
	return b.engine.ReserveBalance(ctx, accountID, amount, idempotencyKey)
}

func (b *ledgerBridge) CommitReservation(ctx context.Context, reservationID, transactionID string) error {
	if b.failCommit != nil {
		return b.failCommit
	}
	return b.engine.CommitReservation(ctx, reservationID, transactionID)
}

func (b *ledgerBridge) ReleaseReservation(ctx context.Context, reservationID, reason string) error {
	if b.failRelease != nil {
		return b.failRelease
	}
	return b.engine.ReleaseReservation(ctx, reservationID, reason)
}

func (b *ledgerBridge) CreditBalance(ctx context.Context, accountID string, amount money.Money, referenceID string) (int64, error) {
	if b.failCredit != nil {
		return 0, b.failCredit
	}
	return b.engine.CreditBalance(ctx, accountID, amount, referenceID)
}

// txBridge runs the real record service in-process behind the
// TxRecordClient interface.
type txBridge struct {
	svc *txrecord.Service

	failCreate   error
	failComplete error
}

func (b *txBridge) CreateTransaction(ctx context.Context, in CreateTransactionInput) (string, string, error) {
	if b.failCreate != nil {
		return "", "", b.failCreate
	}
	txn, err := b.svc.CreateTransaction(ctx, txrecord.CreateInput{
		PaymentID:            in.PaymentID,
		ReservationID:        in.ReservationID,
		SourceAccountID:      in.SourceAccountID,
		DestinationAccountID: in.DestinationAccountID,
		Amount:               in.Amount,
		IdempotencyKey:       in.IdempotencyKey,
	})
	if err != nil {
		return "", "", err
	}
	return txn.ID, txn.ReferenceNumber, nil
}

func (b *txBridge) CompleteTransaction(ctx context.Context, transactionID string) error {
	if b.failComplete != nil {
		return b.failComplete
	}
	return b.svc.CompleteTransaction(ctx, transactionID)
}

func (b *txBridge) FailTransaction(ctx context.Context, transactionID, reason string) error {
	return b.svc.FailTransaction(ctx, transactionID, reason)
}

type harness struct {
	orch     *Orchestrator
	payments *MemoryStore
	ledgers  *ledger.MemoryStore
	txs      *txrecord.MemoryStore
	bridge   *ledgerBridge
	txbridge *txBridge
	rec      *events.Recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ledgerStore := ledger.NewMemoryStore()
	engine := ledger.NewEngine(ledgerStore, nil, ledger.DefaultReservationTTL, zerolog.Nop())
	engine.SetNow(func() time.Time { return testNow })

	rec := events.NewRecorder()
	txStore := txrecord.NewMemoryStore()
	txSvc := txrecord.NewService(txStore, rec, zerolog.Nop())
	txSvc.SetNow(func() time.Time { return testNow })

	bridge := &ledgerBridge{engine: engine}
	txbridge := &txBridge{svc: txSvc}

	paymentStore := NewMemoryStore()
	orch := NewOrchestrator(paymentStore, bridge, txbridge, rec, zerolog.Nop())
	orch.SetNow(func() time.Time { return testNow })

	return &harness{
		orch:     orch,
		payments: paymentStore,
		ledgers:  ledgerStore,
		txs:      txStore,
		bridge:   bridge,
		txbridge: txbridge,
		rec:      rec,
	}
}

func (h *harness) seedAccount(id string, balance int64) {
	h.ledgers.PutAccount(ledger.Account{ID: id, Currency: "USD", Balance: balance, Active: true})
}

func (h *harness) balance(t *testing.T, id string) int64 {
	t.Helper()
	acct, ok := h.ledgers.AccountSnapshot(id)
	require.True(t, ok)
	return acct.Balance
}

func TestHappyTransfer(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
	assert.Contains(t, p.ReferenceNumber, "PAY-")
	assert.NotEmpty(t, p.IdempotencyKey)

	p, err = h.orch.ProcessPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
	require.NotNil(t, p.ProcessedAt)

	assert.Equal(t, int64(750), h.balance(t, "acct-a"))
	assert.Equal(t, int64(250), h.balance(t, "acct-b"))

	res, ok := h.ledgers.ReservationSnapshot(p.ReservationID)
	require.True(t, ok)
	assert.Equal(t, ledger.ReservationCommitted, res.Status)
	assert.Equal(t, p.TransactionID, res.TransactionID)

	txn, ok := h.txs.TransactionSnapshot(p.TransactionID)
	require.True(t, ok)
	assert.Equal(t, txrecord.StatusCompleted, txn.Status)

	assert.Equal(t, []string{
		events.PaymentInitiated,
		events.PaymentProcessing,
		events.TransactionCreated,
		events.TransactionCompleted,
		events.PaymentCompleted,
	}, h.rec.AllEventTypes())
}

func TestCreatePaymentSameAccount(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)

	_, err := h.orch.CreatePayment(context.Background(), "acct-a", "acct-a", money.New(100, "USD"))
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
}

func TestCreatePaymentUnknownAccount(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)

	_, err := h.orch.CreatePayment(context.Background(), "acct-a", "acct-missing", money.New(100, "USD"))
	assert.True(t, fault.Is(err, fault.CodeNotFound))
	// Nothing persisted and nothing published.
	assert.Empty(t, h.rec.AllEventTypes())
}

func TestCreatePaymentCurrencyMismatch(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.ledgers.PutAccount(ledger.Account{ID: "acct-eur", Currency: "EUR", Balance: 0, Active: true})

	_, err := h.orch.CreatePayment(context.Background(), "acct-a", "acct-eur", money.New(100, "USD"))
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
	assert.ErrorContains(t, err, "currency mismatch")
}

func TestProcessPaymentInsufficientFunds(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 100)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(500, "USD"))
	require.NoError(t, err)

	failed, err := h.orch.ProcessPayment(ctx, p.ID)
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
	require.NotNil(t, failed)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.FailureReason, "insufficient")

	assert.Equal(t, int64(100), h.balance(t, "acct-a"))
	assert.Equal(t, int64(0), h.balance(t, "acct-b"))

	// No transaction record and no transaction events.
	assert.Equal(t, 0, h.txs.Count())
	assert.Equal(t, []string{
		events.PaymentInitiated,
		events.PaymentProcessing,
		events.PaymentFailed,
	}, h.rec.AllEventTypes())
}

func TestProcessPaymentOnlyFromPending(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)
	_, err = h.orch.ProcessPayment(ctx, p.ID)
	require.NoError(t, err)

	_, err = h.orch.ProcessPayment(ctx, p.ID)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	// Re-processing moved no additional money.
	assert.Equal(t, int64(750), h.balance(t, "acct-a"))
	assert.Equal(t, int64(250), h.balance(t, "acct-b"))
}

func TestTransactionCreateFailureReleasesReservation(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	h.txbridge.failCreate = fault.New(fault.CodeUnknown, "txrecord unavailable")
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	failed, err := h.orch.ProcessPayment(ctx, p.ID)
	require.Error(t, err)
	require.NotNil(t, failed)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.FailureReason, "transaction create failed")

	// The hold was lifted and no money moved.
	res, ok := h.ledgers.ReservationSnapshot(failed.ReservationID)
	require.True(t, ok)
	assert.Equal(t, ledger.ReservationReleased, res.Status)
	assert.Equal(t, "tx-create-failed", res.ReleaseReason)
	assert.Equal(t, int64(1000), h.balance(t, "acct-a"))
}

func TestCreditFailureCompensatesTransactionAndReservation(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	h.bridge.failCredit = fault.New(fault.CodeUnknown, "ledger unavailable")
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	failed, err := h.orch.ProcessPayment(ctx, p.ID)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.FailureReason, "credit failed")

	txn, ok := h.txs.TransactionSnapshot(failed.TransactionID)
	require.True(t, ok)
	assert.Equal(t, txrecord.StatusFailed, txn.Status)

	res, ok := h.ledgers.ReservationSnapshot(failed.ReservationID)
	require.True(t, ok)
	assert.Equal(t, ledger.ReservationReleased, res.Status)

	assert.Equal(t, int64(1000), h.balance(t, "acct-a"))
	assert.Equal(t, int64(0), h.balance(t, "acct-b"))
}

func TestCompensationFailureAppendsWarning(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	h.txbridge.failCreate = fault.New(fault.CodeUnknown, "txrecord unavailable")
	h.bridge.failRelease = fault.New(fault.CodeUnknown, "ledger unavailable")
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	failed, _ := h.orch.ProcessPayment(ctx, p.ID)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.FailureReason, "(WARNING: failed to roll back reservation)")
}

func TestCommitFailureIsPartialCommitAnomaly(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	h.bridge.failCommit = fault.New(fault.CodeDeadlineExceeded, "ledger.CommitReservation deadline exceeded")
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	failed, err := h.orch.ProcessPayment(ctx, p.ID)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, failed.Status)

	// The reason carries the anomaly marker and every id needed to
	// reconcile.
	assert.Contains(t, failed.FailureReason, PartialCommitAnomaly)
	assert.Contains(t, failed.FailureReason, failed.ReservationID)
	assert.Contains(t, failed.FailureReason, failed.TransactionID)

	// The credit stands, the debit never happened, the hold is intact.
	assert.Equal(t, int64(1000), h.balance(t, "acct-a"))
	assert.Equal(t, int64(250), h.balance(t, "acct-b"))
	res, ok := h.ledgers.ReservationSnapshot(failed.ReservationID)
	require.True(t, ok)
	assert.Equal(t, ledger.ReservationPending, res.Status)

	// Operator reconciliation: retrying the commit with the recorded
	// transaction id reaches the consistent end state.
	h.bridge.failCommit = nil
	require.NoError(t, h.bridge.engine.CommitReservation(ctx, failed.ReservationID, failed.TransactionID))
	assert.Equal(t, int64(750), h.balance(t, "acct-a"))
	res, _ = h.ledgers.ReservationSnapshot(failed.ReservationID)
	assert.Equal(t, ledger.ReservationCommitted, res.Status)
}

func TestCompletionFailureLeavesPaymentProcessing(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	h.txbridge.failComplete = fault.New(fault.CodeUnknown, "txrecord unavailable")
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	stuck, err := h.orch.ProcessPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, stuck.Status)

	// Money moved; only the record completion is owed.
	assert.Equal(t, int64(750), h.balance(t, "acct-a"))
	assert.Equal(t, int64(250), h.balance(t, "acct-b"))
}

func TestCancelPendingPayment(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	cancelled, err := h.orch.CancelPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Contains(t, h.rec.EventTypes(), events.PaymentCancelled)

	_, err = h.orch.ProcessPayment(ctx, p.ID)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
}

func TestCancelProcessingPaymentReleasesReservation(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)

	// Put the payment in the state a saga paused after the reserve step
	// would leave it in.
	reservationID, err := h.bridge.engine.ReserveBalance(ctx, "acct-a", money.New(250, "USD"), p.IdempotencyKey)
	require.NoError(t, err)
	err = h.payments.WithinTx(ctx, func(tx Tx) error {
		row, err := tx.PaymentForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}
		row.Status = StatusProcessing
		row.ReservationID = reservationID
		return tx.Save(ctx, row)
	})
	require.NoError(t, err)

	cancelled, err := h.orch.CancelPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	res, ok := h.ledgers.ReservationSnapshot(reservationID)
	require.True(t, ok)
	assert.Equal(t, ledger.ReservationReleased, res.Status)
	assert.Equal(t, "user cancellation", res.ReleaseReason)
	assert.Equal(t, int64(1000), h.balance(t, "acct-a"))
}

func TestCancelCompletedPaymentRejected(t *testing.T) {
	h := newHarness(t)
	h.seedAccount("acct-a", 1000)
	h.seedAccount("acct-b", 0)
	ctx := context.Background()

	p, err := h.orch.CreatePayment(ctx, "acct-a", "acct-b", money.New(250, "USD"))
	require.NoError(t, err)
	_, err = h.orch.ProcessPayment(ctx, p.ID)
	require.NoError(t, err)

	_, err = h.orch.CancelPayment(ctx, p.ID)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	final, err := h.orch.GetPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, final.Status)
}

func TestGetPaymentUnknown(t *testing.T) {
	h := newHarness(t)

	_, err := h.orch.GetPayment(context.Background(), "nope")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}
