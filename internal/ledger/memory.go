package ledger

import (
	"context"
	"sync"

	"github.com/driftpay/drift/internal/fault"
)

// MemoryStore is the in-memory Store used by tests and by driftctl dry runs.
// One mutex serializes all units, which trivially satisfies the Store
// contract; writes are staged per unit and applied only when fn succeeds, so
// a failed unit leaves no partial state behind.
type MemoryStore struct {
	mu           sync.Mutex
	accounts     map[string]Account
	reservations map[string]Reservation
	byIdemKey    map[string]string // idempotency_key -> reservation id
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:     make(map[string]Account),
		reservations: make(map[string]Reservation),
		byIdemKey:    make(map[string]string),
	}
}

// PutAccount seeds or replaces an account.
func (s *MemoryStore) PutAccount(acct Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acct.ID] = acct
}

// AccountSnapshot returns a copy of the stored account, for assertions.
func (s *MemoryStore) AccountSnapshot(id string) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

// ReservationSnapshot returns a copy of the stored reservation.
func (s *MemoryStore) ReservationSnapshot(id string) (Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	return r, ok
}

// ReservationCount reports how many reservations exist, for uniqueness
// assertions.
func (s *MemoryStore) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:        s,
		accounts:     make(map[string]Account),
		reservations: make(map[string]Reservation),
		inserted:     make(map[string]string),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

// memTx stages writes against the parent store.
type memTx struct {
	store        *MemoryStore
	accounts     map[string]Account     // staged account writes
	reservations map[string]Reservation // staged reservation writes
	inserted     map[string]string      // staged idempotency-key claims
}

func (t *memTx) apply() {
	for id, a := range t.accounts {
		t.store.accounts[id] = a
	}
	for id, r := range t.reservations {
		t.store.reservations[id] = r
	}
	for key, id := range t.inserted {
		t.store.byIdemKey[key] = id
	}
}

func (t *memTx) Account(ctx context.Context, accountID string) (*Account, error) {
	if a, ok := t.accounts[accountID]; ok {
		cp := a
		return &cp, nil
	}
	if a, ok := t.store.accounts[accountID]; ok {
		cp := a
		return &cp, nil
	}
	return nil, fault.Newf(fault.CodeNotFound, "account %s not found", accountID)
}

func (t *memTx) AccountForUpdate(ctx context.Context, accountID string) (*Account, error) {
	// The store mutex already serializes units.
	return t.Account(ctx, accountID)
}

func (t *memTx) SaveAccount(ctx context.Context, acct *Account) error {
	if _, ok := t.accounts[acct.ID]; !ok {
		if _, ok := t.store.accounts[acct.ID]; !ok {
			return fault.Newf(fault.CodeNotFound, "account %s not found", acct.ID)
		}
	}
	t.accounts[acct.ID] = *acct
	return nil
}

func (t *memTx) PendingReservationTotal(ctx context.Context, accountID string) (int64, error) {
	var total int64
	seen := make(map[string]bool)
	for id, r := range t.reservations {
		seen[id] = true
		if r.AccountID == accountID && r.Status == ReservationPending {
			total += r.Amount
		}
	}
	for id, r := range t.store.reservations {
		if seen[id] {
			continue
		}
		if r.AccountID == accountID && r.Status == ReservationPending {
			total += r.Amount
		}
	}
	return total, nil
}

func (t *memTx) Reservation(ctx context.Context, id string) (*Reservation, error) {
	if r, ok := t.reservations[id]; ok {
		cp := r
		return &cp, nil
	}
	if r, ok := t.store.reservations[id]; ok {
		cp := r
		return &cp, nil
	}
	return nil, fault.Newf(fault.CodeNotFound, "reservation %s not found", id)
}

func (t *memTx) ReservationByIdempotencyKey(ctx context.Context, key string) (*Reservation, error) {
	if id, ok := t.inserted[key]; ok {
		return t.Reservation(ctx, id)
	}
	if id, ok := t.store.byIdemKey[key]; ok {
		return t.Reservation(ctx, id)
	}
	return nil, nil
}

func (t *memTx) InsertReservation(ctx context.Context, r *Reservation) error {
	if _, ok := t.inserted[r.IdempotencyKey]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already reserved", r.IdempotencyKey)
	}
	if _, ok := t.store.byIdemKey[r.IdempotencyKey]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already reserved", r.IdempotencyKey)
	}
	t.reservations[r.ID] = *r
	t.inserted[r.IdempotencyKey] = r.ID
	return nil
}

func (t *memTx) SaveReservation(ctx context.Context, r *Reservation) error {
	if _, ok := t.reservations[r.ID]; !ok {
		if _, ok := t.store.reservations[r.ID]; !ok {
			return fault.Newf(fault.CodeNotFound, "reservation %s not found", r.ID)
		}
	}
	t.reservations[r.ID] = *r
	return nil
}
