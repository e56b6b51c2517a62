package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/openlibrary"
	"libraryapi/internal/platform/postgres"
)

func main() {
	var (
		count    = flag.Int("generate", 0, "Number of synthetic books to add after the starter catalog")
		subjects = flag.String("openlibrary-subjects", "", "Comma separated Open Library subjects to import")
		perSubj  = flag.Int("openlibrary-limit", 20, "Works imported per Open Library subject")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	// COPY of large catalogs outlives the request timeout
	repo := book.NewPostgresRepo(pool, 5*time.Minute)

	n, err := book.SeedIfEmpty(ctx, repo)
	if err != nil {
		log.Error().Err(err).Msg("seed starter catalog")
		os.Exit(1)
	}
	if n == 0 {
		log.Info().Msg("catalog not empty, starter catalog skipped")
	} else {
		log.Info().Int64("rows", n).Msg("starter catalog inserted")
	}

	if *count > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		n, err := repo.BulkInsert(ctx, generateBooks(*count, rng))
		if err != nil {
			log.Error().Err(err).Msg("insert generated books")
			os.Exit(1)
		}
		log.Info().Int64("rows", n).Msg("generated books inserted")
	}

	if *subjects != "" {
		client := openlibrary.NewClient("libraryapi-seed/1.0", 2, 3)
		imported, err := importSubjects(ctx, client, splitSubjects(*subjects), *perSubj)
		if err != nil {
			log.Error().Err(err).Msg("import from open library")
			os.Exit(1)
		}
		n, err := repo.BulkInsert(ctx, imported)
		if err != nil {
			log.Error().Err(err).Msg("insert imported books")
			os.Exit(1)
		}
		log.Info().Int64("rows", n).Msg("open library books inserted")
	}

	if total, err := repo.Count(ctx); err == nil {
		log.Info().Int64("total", total).Msg("books in database")
	}
}

var (
	genres     = []string{"Romance", "Ficção Científica", "Fantasia", "Distopia", "História", "Biografia", "Mistério", "Filosofia"}
	publishers = []string{"Aleph", "Companhia das Letras", "Rocco", "Intrínseca", "HarperCollins", "Record"}
	authors    = []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha", "Elisa Prado", "Fábio Nunes"}
	words      = []string{
		"Aventura", "Mistério", "Jornada", "Descoberta", "Segredos", "Sonhos", "Esperança",
		"Amor", "Guerra", "Paz", "Ciência", "Natureza", "Futuro", "Passado", "Tempo", "Espaço",
	}
)

func generateBooks(n int, rng *rand.Rand) []book.Book {
	books := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, book.Book{
			Title:     fmt.Sprintf("%s e %s %d", pick(rng, words), pick(rng, words), i+1),
			Author:    pick(rng, authors),
			Publisher: pick(rng, publishers),
			Genre:     pick(rng, genres),
			Year:      1950 + rng.Intn(75),
			Pages:     100 + rng.Intn(800),
			Price:     decimal.New(int64(1990+rng.Intn(15000)), -2),
		})
	}
	return books
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}

func splitSubjects(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
