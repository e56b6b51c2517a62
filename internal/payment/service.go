package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a payment service. now defaults to time.Now.
func NewService(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Checkout records a payment dated today. The cart is discarded; totals are
// not verified and repeated submissions create separate payments.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (Payment, error) {
	if !req.Method.Valid() {
		return Payment{}, fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}

	y, m, d := s.now().Date()
	p := &Payment{
		User:        req.User,
		Email:       req.Email,
		TotalAmount: req.TotalAmount,
		Method:      req.Method,
		PaidOn:      time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Payment{}, fmt.Errorf("create payment: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int64("payment_id", p.ID).
		Str("method", string(p.Method)).
		Int("cart_items", len(req.Cart.Books)).
		Msg("checkout recorded")
	return *p, nil
}

func (s *Service) FindAllByEmail(ctx context.Context, email string) ([]Payment, error) {
	payments, err := s.repo.FindAllByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	return payments, nil
}
