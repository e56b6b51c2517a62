package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	FindAll(ctx context.Context) ([]Book, error)
	// SearchByTitleOrAuthor matches books whose title contains title or whose
	// author contains author, ignoring case. An empty needle matches nothing.
	SearchByTitleOrAuthor(ctx context.Context, title, author string) ([]Book, error)
	FindByGenre(ctx context.Context, genre string) ([]Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
}
