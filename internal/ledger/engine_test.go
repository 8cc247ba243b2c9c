package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftpay/drift/internal/fault"
	"github.com/driftpay/drift/internal/money"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	engine := NewEngine(store, nil, DefaultReservationTTL, zerolog.Nop())
	engine.SetNow(func() time.Time { return testNow })
	return engine, store
}

func seedAccount(store *MemoryStore, id string, balance int64) {
	store.PutAccount(Account{ID: id, Currency: "USD", Balance: balance, Active: true})
}

func TestGetBalance(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	bal, err := engine.GetBalance(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), bal.Available)
	assert.Equal(t, "USD", bal.Currency)

	// A pending reservation reduces available without touching balance.
	_, err = engine.ReserveBalance(ctx, "acct-1", money.New(300, "USD"), "key-1")
	require.NoError(t, err)

	bal, err = engine.GetBalance(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, int64(700), bal.Available)

	acct, ok := store.AccountSnapshot("acct-1")
	require.True(t, ok)
	assert.Equal(t, int64(1000), acct.Balance)
}

func TestGetBalanceUnknownAccount(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.GetBalance(context.Background(), "nope")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}

func TestGetReservation(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(300, "USD"), "key-1")
	require.NoError(t, err)

	res, err := engine.GetReservation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", res.AccountID)
	assert.Equal(t, int64(300), res.Amount)
	assert.Equal(t, ReservationPending, res.Status)
	assert.Equal(t, testNow.Add(DefaultReservationTTL), res.ExpiresAt)

	_, err = engine.GetReservation(ctx, "nope")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}

func TestReserveBalanceIdempotentReplay(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	first, err := engine.ReserveBalance(ctx, "acct-1", money.New(100, "USD"), "idem-1")
	require.NoError(t, err)
	second, err := engine.ReserveBalance(ctx, "acct-1", money.New(100, "USD"), "idem-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.ReservationCount())
}

func TestReserveBalanceReplayIgnoresDifferentAmount(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	first, err := engine.ReserveBalance(ctx, "acct-1", money.New(100, "USD"), "k")
	require.NoError(t, err)

	// A colliding key with a different amount replays the original row; the
	// retry refers to the same original action.
	second, err := engine.ReserveBalance(ctx, "acct-1", money.New(200, "USD"), "k")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	res, ok := store.ReservationSnapshot(first)
	require.True(t, ok)
	assert.Equal(t, int64(100), res.Amount)
	assert.Equal(t, 1, store.ReservationCount())
}

func TestReserveBalanceReplayAfterTerminalStatus(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(100, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.CommitReservation(ctx, id, "tx-1"))

	replay, err := engine.ReserveBalance(ctx, "acct-1", money.New(100, "USD"), "k")
	require.NoError(t, err)
	assert.Equal(t, id, replay)
	assert.Equal(t, 1, store.ReservationCount())
}

func TestReserveBalanceExactAvailableSucceeds(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 500)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(500, "USD"), "k")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestReserveBalanceInsufficientByOne(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 499)
	ctx := context.Background()

	_, err := engine.ReserveBalance(ctx, "acct-1", money.New(500, "USD"), "k")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
	assert.ErrorContains(t, err, "insufficient")
}

func TestReserveBalanceCountsPendingHolds(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	_, err := engine.ReserveBalance(ctx, "acct-1", money.New(800, "USD"), "k1")
	require.NoError(t, err)

	_, err = engine.ReserveBalance(ctx, "acct-1", money.New(300, "USD"), "k2")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))

	_, err = engine.ReserveBalance(ctx, "acct-1", money.New(200, "USD"), "k3")
	assert.NoError(t, err)
}

func TestReserveBalanceValidation(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	tests := []struct {
		name    string
		account string
		amount  money.Money
		key     string
	}{
		{"zero amount", "acct-1", money.New(0, "USD"), "k"},
		{"negative amount", "acct-1", money.New(-5, "USD"), "k"},
		{"missing key", "acct-1", money.New(100, "USD"), ""},
		{"missing currency", "acct-1", money.New(100, ""), "k"},
		{"missing account", "", money.New(100, "USD"), "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ReserveBalance(ctx, tt.account, tt.amount, tt.key)
			assert.True(t, fault.Is(err, fault.CodeInvalidArgument), "got %v", err)
		})
	}
}

func TestReserveBalanceCurrencyMismatch(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)

	_, err := engine.ReserveBalance(context.Background(), "acct-1", money.New(100, "EUR"), "k")
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
	assert.ErrorContains(t, err, "currency mismatch")
}

func TestReserveBalanceInactiveAccount(t *testing.T) {
	engine, store := newTestEngine(t)
	store.PutAccount(Account{ID: "acct-1", Currency: "USD", Balance: 1000, Active: false})

	_, err := engine.ReserveBalance(context.Background(), "acct-1", money.New(100, "USD"), "k")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
	assert.ErrorContains(t, err, "inactive")
}

func TestReserveBalanceSetsExpiry(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)

	id, err := engine.ReserveBalance(context.Background(), "acct-1", money.New(100, "USD"), "k")
	require.NoError(t, err)

	res, ok := store.ReservationSnapshot(id)
	require.True(t, ok)
	assert.Equal(t, ReservationPending, res.Status)
	assert.Equal(t, testNow, res.CreatedAt)
	assert.Equal(t, testNow.Add(DefaultReservationTTL), res.ExpiresAt)
}

func TestCommitReservation(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.CommitReservation(ctx, id, "tx-1"))

	acct, _ := store.AccountSnapshot("acct-1")
	assert.Equal(t, int64(750), acct.Balance)

	res, _ := store.ReservationSnapshot(id)
	assert.Equal(t, ReservationCommitted, res.Status)
	assert.Equal(t, "tx-1", res.TransactionID)
	require.NotNil(t, res.CommittedAt)
	assert.Equal(t, testNow, *res.CommittedAt)
}

func TestCommitReservationOnlyOnce(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.CommitReservation(ctx, id, "tx-1"))

	err = engine.CommitReservation(ctx, id, "tx-1")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))

	// Balance unchanged by the rejected second commit.
	acct, _ := store.AccountSnapshot("acct-1")
	assert.Equal(t, int64(750), acct.Balance)
}

func TestCommitReleasedReservationRejected(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.ReleaseReservation(ctx, id, "test"))

	err = engine.CommitReservation(ctx, id, "tx-1")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
}

func TestCommitUnknownReservation(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.CommitReservation(context.Background(), "nope", "tx-1")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}

func TestCommitRequiresTransactionID(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)

	err = engine.CommitReservation(ctx, id, "")
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))
}

func TestReleaseReservationMovesNoFunds(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.ReleaseReservation(ctx, id, "caller gave up"))

	acct, _ := store.AccountSnapshot("acct-1")
	assert.Equal(t, int64(1000), acct.Balance)

	res, _ := store.ReservationSnapshot(id)
	assert.Equal(t, ReservationReleased, res.Status)
	assert.Equal(t, "caller gave up", res.ReleaseReason)
	require.NotNil(t, res.ReleasedAt)

	// Released holds stop counting against available.
	bal, err := engine.GetBalance(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), bal.Available)
}

func TestReleaseTerminalReservationRejected(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 1000)
	ctx := context.Background()

	id, err := engine.ReserveBalance(ctx, "acct-1", money.New(250, "USD"), "k")
	require.NoError(t, err)
	require.NoError(t, engine.CommitReservation(ctx, id, "tx-1"))

	err = engine.ReleaseReservation(ctx, id, "late")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))
}

func TestCreditBalance(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 100)
	ctx := context.Background()

	newBalance, err := engine.CreditBalance(ctx, "acct-1", money.New(250, "USD"), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, int64(350), newBalance)
}

func TestCreditBalanceNotDeduplicated(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 0)
	ctx := context.Background()

	// reference_id is audit-only; the same reference credits twice.
	_, err := engine.CreditBalance(ctx, "acct-1", money.New(100, "USD"), "ref-1")
	require.NoError(t, err)
	newBalance, err := engine.CreditBalance(ctx, "acct-1", money.New(100, "USD"), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), newBalance)
}

func TestCreditBalanceRejections(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 100)
	store.PutAccount(Account{ID: "acct-frozen", Currency: "USD", Balance: 0, Active: false})
	ctx := context.Background()

	_, err := engine.CreditBalance(ctx, "acct-frozen", money.New(100, "USD"), "ref")
	assert.True(t, fault.Is(err, fault.CodeFailedPrecondition))

	_, err = engine.CreditBalance(ctx, "acct-1", money.New(100, "EUR"), "ref")
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	_, err = engine.CreditBalance(ctx, "acct-1", money.New(100, "USD"), "")
	assert.True(t, fault.Is(err, fault.CodeInvalidArgument))

	_, err = engine.CreditBalance(ctx, "missing", money.New(100, "USD"), "ref")
	assert.True(t, fault.Is(err, fault.CodeNotFound))
}

func TestFailedReservationLeavesNoState(t *testing.T) {
	engine, store := newTestEngine(t)
	seedAccount(store, "acct-1", 100)

	_, err := engine.ReserveBalance(context.Background(), "acct-1", money.New(500, "USD"), "k")
	require.Error(t, err)
	assert.Equal(t, 0, store.ReservationCount())
}
