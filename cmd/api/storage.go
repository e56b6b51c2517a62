package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"libraryapi/db/migrations"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/payment"
	"libraryapi/internal/platform/postgres"
	"libraryapi/internal/user"
)

// storage bundles the repositories selected by STORAGE_DRIVER.
type storage struct {
	books    book.Repository
	users    user.Repository
	payments payment.Repository
	ready    func(ctx context.Context) error
	close    func()
}

func openStorage(ctx context.Context, cfg config.Config, log zerolog.Logger) (storage, error) {
	if cfg.StorageDriver == config.DriverMemory {
		return newMemoryStorage(ctx, log)
	}

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return storage{}, err
	}
	log.Info().Str("dsn", postgres.RedactDSN(cfg.DatabaseDSN)).Msg("database connection OK")

	if cfg.AutoMigrate {
		if err := migrations.Up(ctx, pool, log); err != nil {
			pool.Close()
			return storage{}, err
		}
	}

	return storage{
		books:    book.NewPostgresRepo(pool, cfg.QueryTimeout),
		users:    user.NewPostgresRepo(pool, cfg.QueryTimeout),
		payments: payment.NewPostgresRepo(pool, cfg.QueryTimeout),
		ready: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
			defer cancel()
			return pool.Ping(ctx)
		},
		close: pool.Close,
	}, nil
}

func newMemoryStorage(ctx context.Context, log zerolog.Logger) (storage, error) {
	books := book.NewMemoryRepo()
	n, err := book.Seed(ctx, books)
	if err != nil {
		return storage{}, fmt.Errorf("seed memory catalog: %w", err)
	}
	log.Info().Int64("books", n).Msg("memory storage seeded")

	return storage{
		books:    books,
		users:    user.NewMemoryRepo(),
		payments: payment.NewMemoryRepo(),
		ready:    func(context.Context) error { return nil },
		close:    func() {},
	}, nil
}
