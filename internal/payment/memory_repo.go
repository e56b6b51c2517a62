package payment

import (
	"context"
	"sync"
)

// MemoryRepo keeps payments in insertion order.
type MemoryRepo struct {
	mu       sync.RWMutex
	payments []Payment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Create(_ context.Context, p *Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = int64(len(m.payments) + 1)
	m.payments = append(m.payments, *p)
	return nil
}

func (m *MemoryRepo) FindAllByEmail(_ context.Context, email string) ([]Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Payment, 0)
	for _, p := range m.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}
