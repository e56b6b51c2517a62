package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"libraryapi/internal/book"
	"libraryapi/internal/platform/openlibrary"
)

type subjectSearcher interface {
	SearchBySubject(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

// defaultImportPrice is used for imported works; Open Library carries no prices.
var defaultImportPrice = decimal.RequireFromString("39.90")

// importSubjects fetches up to limit works per subject and maps them to
// books with the subject as genre. Works without a title are skipped.
func importSubjects(ctx context.Context, client subjectSearcher, subjects []string, limit int) ([]book.Book, error) {
	var books []book.Book
	for _, subject := range subjects {
		res, err := client.SearchBySubject(ctx, subject, limit)
		if err != nil {
			return nil, fmt.Errorf("search subject %q: %w", subject, err)
		}
		for _, doc := range res.Docs {
			if doc.Title == "" {
				continue
			}
			books = append(books, book.Book{
				Title:     doc.Title,
				Author:    first(doc.AuthorNames),
				Publisher: first(doc.Publishers),
				Genre:     subject,
				Year:      doc.FirstPublishYear,
				Pages:     doc.NumberOfPagesMedian,
				Price:     defaultImportPrice,
			})
		}
	}
	return books, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
