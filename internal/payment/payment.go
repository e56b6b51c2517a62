package payment

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"libraryapi/internal/book"
)

var (
	// ErrNoPaymentsFound is returned when the payments storage is absent.
	// An email without payments is not an error.
	ErrNoPaymentsFound = errors.New("no payments found")
	ErrInvalidMethod   = errors.New("invalid payment method")
)

const dateLayout = "2006-01-02"

// Method is the closed set of accepted payment methods, stored by name.
type Method string

const (
	MethodCreditCard Method = "CARTAO_CREDITO"
	MethodDebitCard  Method = "CARTAO_DEBITO"
	MethodPix        Method = "PIX"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPix:
		return true
	}
	return false
}

// Cart is the list of books submitted with a checkout. It is never stored.
type Cart struct {
	Books []book.Book
}

// UnmarshalJSON accepts the list under "books" or "itens".
func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw struct {
		Books []book.Book `json:"books"`
		Items []book.Book `json:"itens"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Books = raw.Books
	if len(c.Books) == 0 {
		c.Books = raw.Items
	}
	return nil
}

// Payment is a row of tb_pagamentos.
type Payment struct {
	ID          int64
	User        string
	Email       string
	TotalAmount decimal.Decimal
	Method      Method
	PaidOn      time.Time
}

func (p Payment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int64           `json:"id"`
		User        string          `json:"user"`
		Email       string          `json:"email"`
		TotalAmount decimal.Decimal `json:"valorTotal"`
		Method      Method          `json:"formaPagamento"`
		PaidOn      string          `json:"dataPagamento"`
	}{
		ID:          p.ID,
		User:        p.User,
		Email:       p.Email,
		TotalAmount: p.TotalAmount,
		Method:      p.Method,
		PaidOn:      p.PaidOn.Format(dateLayout),
	})
}

// CheckoutRequest carries one checkout submission.
type CheckoutRequest struct {
	User        string
	Email       string
	TotalAmount decimal.Decimal
	Cart        Cart
	Method      Method
}
