package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/httpx"
	"libraryapi/internal/payment"
	"libraryapi/internal/user"
)

// newRouter registers the routes and wraps them in the middleware chain.
// The returned func stops background middleware work.
func newRouter(st storage, cfg config.Config, log zerolog.Logger) (http.Handler, func()) {
	bookHandler := book.NewHTTPHandler(book.NewService(st.books))
	userHandler := user.NewHTTPHandler(user.NewService(st.users))
	paymentHandler := payment.NewHTTPHandler(payment.NewService(st.payments, nil))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := st.ready(r.Context()); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /v1/library", bookHandler.List)
	router.HandleFunc("GET /v1/library/books/search", bookHandler.Search)
	router.HandleFunc("GET /v1/library/books/genre", bookHandler.ByGenre)
	router.HandleFunc("GET /v1/library/books/{id}", bookHandler.GetByID)

	router.HandleFunc("POST /v1/user/create", userHandler.Create)
	router.HandleFunc("POST /v1/user/login", userHandler.Login)
	router.HandleFunc("POST /v1/user/checkout", paymentHandler.Checkout)
	router.HandleFunc("GET /v1/user/pagamentos/{email}", paymentHandler.ListByEmail)

	middleware := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.LoggerMiddleware(log),
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	}

	stop := func() {}
	if cfg.RateLimitRPS > 0 {
		rl := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		middleware = append(middleware, rl.Middleware)
		stop = rl.Stop
	}

	return httpx.Chain(router, middleware...), stop
}
