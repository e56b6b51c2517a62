package main

import (
	"context"
	"flag"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"libraryapi/db/migrations"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := run(context.Background(), cfg, log, *command, *name); err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migration failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger, command, name string) error {
	switch command {
	case "up", "down", "status", "version", "create":
	default:
		return unknownCommandError(command)
	}

	if command == "create" {
		if name == "" {
			return errNameRequired
		}
		if err := goose.Create(nil, cfg.MigrationsDir, name, "sql"); err != nil {
			return err
		}
		log.Info().Str("name", name).Str("dir", cfg.MigrationsDir).Msg("migration created")
		return nil
	}

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if command == "up" {
		if err := migrations.Up(ctx, pool, log); err != nil {
			return err
		}
		log.Info().Msg("migrations applied successfully")
		return nil
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "down":
		if err := goose.DownContext(ctx, db, "."); err != nil {
			return err
		}
		log.Info().Msg("migrations rolled back successfully")
	case "status":
		return goose.StatusContext(ctx, db, ".")
	case "version":
		return goose.VersionContext(ctx, db, ".")
	default:
		return unknownCommandError(command)
	}
	return nil
}
