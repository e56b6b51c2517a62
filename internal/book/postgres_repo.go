package book

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Nullable text columns are read as empty strings.
const selectColumns = `id, titulo, COALESCE(autor, ''), COALESCE(editora, ''), COALESCE(genero, ''), ano, paginas, preco`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM tb_livro ORDER BY id`
	return r.queryBooks(ctx, query)
}

func (r *PostgresRepo) SearchByTitleOrAuthor(ctx context.Context, title, author string) ([]Book, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM tb_livro
		WHERE ($1 <> '' AND titulo ILIKE '%' || $1 || '%' ESCAPE '\')
		   OR ($2 <> '' AND autor ILIKE '%' || $2 || '%' ESCAPE '\')
		ORDER BY id`
	return r.queryBooks(ctx, query, escapeLike(title), escapeLike(author))
}

func (r *PostgresRepo) FindByGenre(ctx context.Context, genre string) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM tb_livro WHERE genero = $1 ORDER BY id`
	return r.queryBooks(ctx, query, genre)
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM tb_livro WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Genre, &b.Year, &b.Pages, &b.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Insert stores b and sets its generated id.
func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO tb_livro (titulo, autor, editora, genero, ano, paginas, preco)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Author, b.Publisher, b.Genre, b.Year, b.Pages, b.Price,
	).Scan(&b.ID)
}

// BulkInsert loads books with COPY and returns the number of rows written.
// Ids are assigned by the database and not reported back.
func (r *PostgresRepo) BulkInsert(ctx context.Context, books []Book) (int64, error) {
	rows := make([][]any, 0, len(books))
	for _, b := range books {
		rows = append(rows, []any{b.Title, b.Author, b.Publisher, b.Genre, b.Year, b.Pages, b.Price})
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.CopyFrom(timeoutCtx,
		pgx.Identifier{"tb_livro"},
		[]string{"titulo", "autor", "editora", "genero", "ano", "paginas", "preco"},
		pgx.CopyFromRows(rows),
	)
}

// Count returns the number of stored books.
func (r *PostgresRepo) Count(ctx context.Context) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM tb_livro`).Scan(&n)
	return n, err
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0)
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Genre, &b.Year, &b.Pages, &b.Price,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
