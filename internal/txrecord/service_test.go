package txrecord

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftpay/drift/internal/events"
	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *MemoryStore, *events.Recorder) {
	t.Helper()
	store := NewMemoryStore()
	rec := events.NewRecorder()
	svc := NewService(store, rec, zerolog.Nop())
	svc.SetNow(func() time.Time { return testNow })
	return svc, store, rec
}

func createInput() CreateInput {
	return CreateInput{
		PaymentID:            "pay-1",
		ReservationID:        "res-1",
		SourceAccountID:      "acct-a",
		DestinationAccountID: "acct-b",
		Amount:               money.New(250, "USD"),
		IdempotencyKey:       "idem-1",
	}
}

func TestCreateTransaction(t *testing.T) {
	svc, store, rec := newTestService(t)

	txn, err := svc.CreateTransaction(context.Background(), createInput())
	require.NoError(t, err)

	assert.NotEmpty(t, txn.ID)
	assert.Contains(t, txn.ReferenceNumber, "TXN-")
	assert.Equal(t, StatusPending, txn.Status)
	assert.Equal(t, int64(250), txn.Amount)
	assert.Equal(t, 1, store.Count())

	evs := rec.TransactionEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, events.TransactionCreated, evs[0].EventType)
	assert.Equal(t, txn.ID, evs[0].TransactionID)
	assert.Equal(t, "pay-1", evs[0].PaymentID)
	assert.Equal(t, "PENDING", evs[0].TransactionStatus)
	assert.Nil(t, evs[0].FailureReason)
}

func TestCreateTransactionIdempotentReplay(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateTransaction(ctx, createInput())
	require.NoError(t, err)
	second, err := svc.CreateTransaction(ctx, createInput())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.Count())
	// A replay publishes no second event.
	assert.Len(t, rec.TransactionEvents(), 1)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	in := createInput()
	in.PaymentID = ""
	_, err := svc.CreateTransaction(ctx, in)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	in = createInput()
	in.IdempotencyKey = ""
	_, err = svc.CreateTransaction(ctx, in)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	in = createInput()
	in.Amount = money.New(0, "USD")
	_, err = svc.CreateTransaction(ctx, in)
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
}

func TestCompleteTransaction(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	txn, err := svc.CreateTransaction(ctx, createInput())
	require.NoError(t, err)
	require.NoError(t, svc.CompleteTransaction(ctx, txn.ID))

	stored, _ := store.TransactionSnapshot(txn.ID)
	assert.Equal(t, StatusCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, testNow, *stored.CompletedAt)

	evs := rec.TransactionEvents()
	require.Len(t, evs, 2)
	assert.Equal(t, events.TransactionCompleted, evs[1].EventType)
	assert.Equal(t, "COMPLETED", evs[1].TransactionStatus)
}

func TestCompleteTransactionTerminalGuard(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	txn, err := svc.CreateTransaction(ctx, createInput())
	require.NoError(t, err)
	require.NoError(t, svc.CompleteTransaction(ctx, txn.ID))

	err = svc.CompleteTransaction(ctx, txn.ID)
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))

	err = svc.FailTransaction(ctx, txn.ID, "late")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
}

func TestFailTransaction(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	txn, err := svc.CreateTransaction(ctx, createInput())
	require.NoError(t, err)
	require.NoError(t, svc.FailTransaction(ctx, txn.ID, "credit failed"))

	stored, _ := store.TransactionSnapshot(txn.ID)
	assert.Equal(t, StatusFailed, stored.Status)
	assert.Equal(t, "credit failed", stored.FailureReason)
	assert.Nil(t, stored.CompletedAt)

	evs := rec.TransactionEvents()
	require.Len(t, evs, 2)
	assert.Equal(t, events.TransactionFailed, evs[1].EventType)
	require.NotNil(t, evs[1].FailureReason)
	assert.Equal(t, "credit failed", *evs[1].FailureReason)
}

func TestFailUnknownTransaction(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.FailTransaction(context.Background(), "nope", "reason")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}
