package user

import (
	"context"
	"sync"
)

// MemoryRepo keeps accounts in process memory, keyed by email.
type MemoryRepo struct {
	mu      sync.RWMutex
	byEmail map[string]User
	nextID  int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byEmail: make(map[string]User)}
}

func (m *MemoryRepo) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[u.Email]; exists {
		return ErrEmailTaken
	}
	m.nextID++
	u.ID = m.nextID
	m.byEmail[u.Email] = *u
	return nil
}

func (m *MemoryRepo) FindByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
