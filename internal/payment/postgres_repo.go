package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/platform/postgres"
)

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

func (r *PostgresRepo) Create(ctx context.Context, p *Payment) error {
	const query = `
	INSERT INTO tb_pagamentos (username, email, valor_total, forma_pagamento, data_pagamento)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		p.User, p.Email, p.TotalAmount, string(p.Method), p.PaidOn,
	).Scan(&p.ID)
}

func (r *PostgresRepo) FindAllByEmail(ctx context.Context, email string) ([]Payment, error) {
	const query = `
	SELECT id, COALESCE(username, ''), email, valor_total, forma_pagamento, data_pagamento
	FROM tb_pagamentos
	WHERE email = $1
	ORDER BY id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, email)
	if err != nil {
		if postgres.IsUndefinedTable(err) {
			return nil, ErrNoPaymentsFound
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]Payment, 0)
	for rows.Next() {
		var p Payment
		var method string
		if err := rows.Scan(&p.ID, &p.User, &p.Email, &p.TotalAmount, &method, &p.PaidOn); err != nil {
			return nil, err
		}
		p.Method = Method(method)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		if postgres.IsUndefinedTable(err) {
			return nil, ErrNoPaymentsFound
		}
		return nil, err
	}
	return out, nil
}
