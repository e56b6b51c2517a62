package book

import (
	"context"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListBooks returns the whole catalog.
func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// SearchBooks returns books matching title or author. When both are empty
// the storage is not consulted and an empty list is returned.
func (s *Service) SearchBooks(ctx context.Context, title, author string) ([]Book, error) {
	if title == "" && author == "" {
		return []Book{}, nil
	}

	books, err := s.repo.SearchByTitleOrAuthor(ctx, title, author)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

// FilterBooksByGenre returns books whose genre equals genre exactly.
func (s *Service) FilterBooksByGenre(ctx context.Context, genre string) ([]Book, error) {
	books, err := s.repo.FindByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("filter books by genre: %w", err)
	}
	return books, nil
}

// FindBookByID returns the book with the given id or ErrNotFound.
func (s *Service) FindBookByID(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("find book %d: %w", id, err)
	}
	return b, nil
}
