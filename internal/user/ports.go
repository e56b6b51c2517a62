package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=user

type Repository interface {
	// Create inserts u and sets its id. Returns ErrEmailTaken when the
	// email already exists.
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (User, error)
}
