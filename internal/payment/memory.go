package payment

import (
	"context"
	"sync"

	"github.com/driftpay/drift/internal/fault"
)

// MemoryStore is the in-memory Store used by tests. Writes are staged per
// unit and applied only when fn succeeds.
type MemoryStore struct {
	mu       sync.Mutex
	payments map[string]Payment
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payments: make(map[string]Payment)}
}

// PaymentSnapshot returns a copy of the stored row, for assertions.
func (s *MemoryStore) PaymentSnapshot(id string) (Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	return p, ok
}

func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, payments: make(map[string]Payment)}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

type memTx struct {
	store    *MemoryStore
	payments map[string]Payment
}

func (t *memTx) apply() {
	for id, p := range t.payments {
		t.store.payments[id] = p
	}
}

func (t *memTx) Payment(ctx context.Context, id string) (*Payment, error) {
	if p, ok := t.payments[id]; ok {
		cp := p
		return &cp, nil
	}
	if p, ok := t.store.payments[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, fault.Newf(fault.CodeNotFound, "payment %s not found", id)
}

func (t *memTx) PaymentForUpdate(ctx context.Context, id string) (*Payment, error) {
	// The store mutex already serializes units.
	return t.Payment(ctx, id)
}

func (t *memTx) Insert(ctx context.Context, p *Payment) error {
	if _, ok := t.payments[p.ID]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "payment %s already exists", p.ID)
	}
	if _, ok := t.store.payments[p.ID]; ok {
		return fault.Newf(fault.CodeAlreadyExists, "payment %s already exists", p.ID)
	}
	t.payments[p.ID] = *p
	return nil
}

func (t *memTx) Save(ctx context.Context, p *Payment) error {
	if _, ok := t.payments[p.ID]; !ok {
		if _, ok := t.store.payments[p.ID]; !ok {
			return fault.Newf(fault.CodeNotFound, "payment %s not found", p.ID)
		}
	}
	t.payments[p.ID] = *p
	return nil
}
