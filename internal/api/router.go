package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/budget-tracker-backend/internal/api/handlers"
	"github.com/baharkarakas/budget-tracker-backend/internal/auth"
	"github.com/baharkarakas/budget-tracker-backend/internal/config"
	"github.com/baharkarakas/budget-tracker-backend/internal/middleware"
	"github.com/baharkarakas/budget-tracker-backend/internal/services"
)

func NewRouter(cfg config.Config, tm *auth.TokenManager, ts *services.TransactionService, bs *services.BudgetService, rs *services.ReportService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	authmw := middleware.NewAuthMiddleware(tm, cfg.Env)
	th := handlers.NewTransactionHandler(ts)
	bh := handlers.NewBudgetHandler(bs)
	rh := handlers.NewReportHandler(rs)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authmw.Auth)

		r.Get("/categories", handlers.ListCategories)

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", th.List)
			r.Post("/", th.Create)
			r.Get("/{id}", th.Get)
			r.Put("/{id}", th.Update)
			r.Delete("/{id}", th.Delete)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", bh.List)
			r.Post("/", bh.Create)
			r.Get("/summary", bh.Summary)
			r.Get("/{id}", bh.Get)
			r.Put("/{id}", bh.Update)
			r.Delete("/{id}", bh.Delete)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/by-category", rh.ByCategory)
			r.Get("/monthly", rh.Monthly)
		})
	})

	return r
}
