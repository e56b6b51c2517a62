package payment

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=payment

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// FindAllByEmail returns an empty slice when the email has no payments.
	FindAllByEmail(ctx context.Context, email string) ([]Payment, error)
}
