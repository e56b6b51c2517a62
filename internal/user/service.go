package user

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"libraryapi/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser stores a new account. The password is stored as a bcrypt hash,
// never in plaintext. There is no existence pre-check: the unique email
// constraint of the storage rejects duplicates with ErrEmailTaken.
func (s *Service) CreateUser(ctx context.Context, name, email, password string) (User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return *u, nil
}

// LoginUser checks the credentials against the stored bcrypt hash.
// Unknown email and wrong password both yield ErrAuthenticationFailed.
func (s *Service) LoginUser(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// keep response time close to the wrong password path
			crypto.VerifyPassword(dummyHash(), password)
			return User{}, ErrAuthenticationFailed
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return User{}, ErrAuthenticationFailed
	}
	return u, nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		h, err := crypto.HashPassword("not-a-real-password")
		if err != nil {
			panic("hash dummy password: " + err.Error())
		}
		dummy = h
	})
	return dummy
}
