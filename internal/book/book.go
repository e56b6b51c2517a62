package book

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a catalog entry in tb_livro.
type Book struct {
	ID        int64           `json:"id"`
	Title     string          `json:"titulo"`
	Author    string          `json:"autor"`
	Publisher string          `json:"editora"`
	Genre     string          `json:"genero"`
	Year      int             `json:"ano"`
	Pages     int             `json:"paginas"`
	Price     decimal.Decimal `json:"preco"`
}
