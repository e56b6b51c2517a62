package book

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo keeps books in process memory. Used by the memory storage
// driver and by tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{books: make(map[int64]Book)}
}

func (m *MemoryRepo) FindAll(_ context.Context) ([]Book, error) {
	return m.filter(func(Book) bool { return true }), nil
}

func (m *MemoryRepo) SearchByTitleOrAuthor(_ context.Context, title, author string) ([]Book, error) {
	title, author = strings.ToLower(title), strings.ToLower(author)
	return m.filter(func(b Book) bool {
		return (title != "" && strings.Contains(strings.ToLower(b.Title), title)) ||
			(author != "" && strings.Contains(strings.ToLower(b.Author), author))
	}), nil
}

func (m *MemoryRepo) FindByGenre(_ context.Context, genre string) ([]Book, error) {
	return m.filter(func(b Book) bool { return b.Genre == genre }), nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id int64) (Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

// Insert stores b and sets its generated id.
func (m *MemoryRepo) Insert(_ context.Context, b *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	b.ID = m.nextID
	m.books[b.ID] = *b
	return nil
}

func (m *MemoryRepo) BulkInsert(ctx context.Context, books []Book) (int64, error) {
	for i := range books {
		if err := m.Insert(ctx, &books[i]); err != nil {
			return int64(i), err
		}
	}
	return int64(len(books)), nil
}

func (m *MemoryRepo) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.books)), nil
}

func (m *MemoryRepo) filter(keep func(Book) bool) []Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Book, 0)
	for _, b := range m.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
