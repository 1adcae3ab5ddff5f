package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hucha-finance/hucha/internal/http/auth"
	"github.com/hucha-finance/hucha/internal/http/copilot"
	"github.com/hucha-finance/hucha/internal/http/debt"
	"github.com/hucha-finance/hucha/internal/http/obligation"
	"github.com/hucha-finance/hucha/internal/http/recurring"
	"github.com/hucha-finance/hucha/internal/http/transaction"
)

type Config struct {
	JWTSecret      string
	AllowedOrigins []string
}

func New(
	cfg Config,
	transactionsV1 *transaction.Handler,
	debtsV1 *debt.Handler,
	obligationsV1 *obligation.Handler,
	recurringV1 *recurring.Handler,
	copilotV1 *copilot.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debtsV1.Routes(r)
		})

		r.Route("/obligations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			obligationsV1.Routes(r)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recurringV1.Routes(r)
		})

		// Extract takes multipart uploads; no content-type restriction.
		r.Route("/copilot", copilotV1.Routes)
	})

	return router
}
