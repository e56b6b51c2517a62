package book

import (
	"context"

	"github.com/shopspring/decimal"
)

// Loader bulk loads books into a storage backend.
type Loader interface {
	BulkInsert(ctx context.Context, books []Book) (int64, error)
}

// Store is a Loader that can report how many books it holds.
type Store interface {
	Loader
	Count(ctx context.Context) (int64, error)
}

// StarterCatalog returns the books loaded by the seed command and by the
// memory storage driver on startup.
func StarterCatalog() []Book {
	return []Book{
		{Title: "Dom Casmurro", Author: "Machado de Assis", Publisher: "Penguin-Companhia", Genre: "Romance", Year: 1899, Pages: 256, Price: decimal.RequireFromString("29.90")},
		{Title: "Duna", Author: "Frank Herbert", Publisher: "Aleph", Genre: "Ficção Científica", Year: 1965, Pages: 680, Price: decimal.RequireFromString("89.90")},
		{Title: "1984", Author: "George Orwell", Publisher: "Companhia das Letras", Genre: "Distopia", Year: 1949, Pages: 416, Price: decimal.RequireFromString("44.90")},
		{Title: "O Hobbit", Author: "J.R.R. Tolkien", Publisher: "HarperCollins", Genre: "Fantasia", Year: 1937, Pages: 336, Price: decimal.RequireFromString("54.90")},
		{Title: "Grande Sertão: Veredas", Author: "João Guimarães Rosa", Publisher: "Companhia das Letras", Genre: "Romance", Year: 1956, Pages: 560, Price: decimal.RequireFromString("79.90")},
		{Title: "Fundação", Author: "Isaac Asimov", Publisher: "Aleph", Genre: "Ficção Científica", Year: 1951, Pages: 320, Price: decimal.RequireFromString("49.90")},
		{Title: "Capitães da Areia", Author: "Jorge Amado", Publisher: "Companhia de Bolso", Genre: "Romance", Year: 1937, Pages: 280, Price: decimal.RequireFromString("34.90")},
		{Title: "O Senhor dos Anéis: A Sociedade do Anel", Author: "J.R.R. Tolkien", Publisher: "HarperCollins", Genre: "Fantasia", Year: 1954, Pages: 576, Price: decimal.RequireFromString("69.90")},
	}
}

// Seed loads the starter catalog through l.
func Seed(ctx context.Context, l Loader) (int64, error) {
	return l.BulkInsert(ctx, StarterCatalog())
}

// SeedIfEmpty loads the starter catalog only when s holds no books, so
// repeated runs do not duplicate it. It reports the rows inserted.
func SeedIfEmpty(ctx context.Context, s Store) (int64, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	return Seed(ctx, s)
}
