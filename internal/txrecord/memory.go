package txrecord

import (
	"context"
	"sync"

	"github.com/driftpay/drift/internal/fault"
)

// MemoryStore is the in-memory Store used by tests. Writes are staged per
// unit and applied only when fn succeeds.
type MemoryStore struct {
	mu           sync.Mutex
	transactions map[string]Transaction
	byIdemKey    map[string]string // idempotency_key -> transaction id
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]Transaction),
		byIdemKey:    make(map[string]string),
	}
}

// TransactionSnapshot returns a copy of the stored row, for assertions.
func (s *MemoryStore) TransactionSnapshot(id string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	return t, ok
}

// Count reports how many rows exist.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:        s,
		transactions: make(map[string]Transaction),
		inserted:     make(map[string]string),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

type memTx struct {
	store        *MemoryStore
	transactions map[string]Transaction
	inserted     map[string]string
}

func (t *memTx) apply() {
	for id, txn := range t.transactions {
		t.store.transactions[id] = txn
	}
	for key, id := range t.inserted {
		t.store.byIdemKey[key] = id
	}
}

func (t *memTx) Transaction(ctx context.Context, id string) (*Transaction, error) {
	if txn, ok := t.transactions[id]; ok {
		cp := txn
		return &cp, nil
	}
	if txn, ok := t.store.transactions[id]; ok {
		cp := txn
		return &cp, nil
	}
	return nil, fault.Newf(fault.CodeNotFound, "transaction %s not found", id)
}

func (t *memTx) TransactionByIdempotencyKey(ctx context.Context, key string) (*Transaction, error) {
	if id, ok := t.inserted[key]; ok {
		return t.Transaction(ctx, id)
	}
	if id, ok := t.store.byIdemKey[key]; ok {
		return t.Transaction(ctx, id)
	}
	return nil, nil
}

func (t *memTx) Insert(ctx context.Context, txn *Transaction) error {
	if _, ok := t.inserted[txn.IdempotencyKey]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already recorded", txn.IdempotencyKey)
	}
	if _, ok := t.store.byIdemKey[txn.IdempotencyKey]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "idempotency key %s already recorded", txn.IdempotencyKey)
	}
	t.transactions[txn.ID] = *txn
	t.inserted[txn.IdempotencyKey] = txn.ID
	return nil
}

func (t *memTx) Save(ctx context.Context, txn *Transaction) error {
	if _, ok := t.transactions[txn.ID]; !ok {
		if _, ok := t.store.transactions[txn.ID]; !ok {
			return fault.Newf(fault.CodeNotFound, "transaction %s not found", txn.ID)
		}
	}
	t.transactions[txn.ID] = *txn
	return nil
}
