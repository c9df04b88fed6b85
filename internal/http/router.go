package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/finla-app/finla/internal/http/account"
	"github.com/finla-app/finla/internal/http/export"
	"github.com/finla-app/finla/internal/http/goal"
	"github.com/finla-app/finla/internal/http/importcsv"
	"github.com/finla-app/finla/internal/http/quote"
	"github.com/finla-app/finla/internal/http/report"
	"github.com/finla-app/finla/internal/http/transaction"
)

func New(
	accountsV1 *account.Handler,
	transactionsV1 *transaction.Handler,
	importV1 *importcsv.Handler,
	goalsV1 *goal.Handler,
	reportsV1 *report.Handler,
	quotesV1 *quote.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/quotes", quotesV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
