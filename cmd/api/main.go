package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/api"
	"github.com/baharkarakas/budget-tracker-backend/internal/auth"
	"github.com/baharkarakas/budget-tracker-backend/internal/config"
	"github.com/baharkarakas/budget-tracker-backend/internal/db"
	"github.com/baharkarakas/budget-tracker-backend/internal/logger"
	"github.com/baharkarakas/budget-tracker-backend/internal/metrics"
	"github.com/baharkarakas/budget-tracker-backend/internal/repository/postgres"
	"github.com/baharkarakas/budget-tracker-backend/internal/services"
	"github.com/baharkarakas/budget-tracker-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	rc := services.NewReconciler(repos.Budgets)
	txnSvc := services.NewTransactionService(repos.Transactions, rc, repos.AuditLogs, wp)
	budgetSvc := services.NewBudgetService(repos.Budgets, repos.AuditLogs, wp)
	reportSvc := services.NewReportService(repos.Transactions)

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTSecret+"-refresh", 15*time.Minute, 24*time.Hour)

	metrics.Init()
	r := api.NewRouter(cfg, tm, txnSvc, budgetSvc, reportSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
