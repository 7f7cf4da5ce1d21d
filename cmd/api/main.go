package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/korhan-dev/cari-ledger/internal/config"
	"github.com/korhan-dev/cari-ledger/internal/handler"
	"github.com/korhan-dev/cari-ledger/internal/logging"
	"github.com/korhan-dev/cari-ledger/internal/middleware"
	"github.com/korhan-dev/cari-ledger/internal/repository"
	"github.com/korhan-dev/cari-ledger/internal/rules"
	"github.com/korhan-dev/cari-ledger/internal/service/catalog"
	"github.com/korhan-dev/cari-ledger/internal/service/posting"
	"github.com/korhan-dev/cari-ledger/internal/validation"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("cari-ledger-api", cfg.LogLevel, cfg.AppEnv)

	ctx := context.Background()

	db, err := repository.NewPostgresDB(ctx, cfg.DatabaseURL, repository.PoolConfig{
		MaxOpenConns:     cfg.DBMaxOpenConns,
		MaxIdleConns:     cfg.DBMaxIdleConns,
		ConnMaxLifetimeS: cfg.DBConnMaxLifetimeS,
		ConnMaxIdleTimeS: cfg.DBConnMaxIdleTimeS,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registry, err := rules.NewRegistry()
	if err != nil {
		slog.Error("failed to build type rule registry", "error", err)
		os.Exit(1)
	}

	currencyRepo := repository.NewCurrencyRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	typeRepo := repository.NewTransactionTypeRepository(db)

	directory, err := posting.LoadCurrencyDirectory(ctx, currencyRepo)
	if err != nil {
		slog.Error("failed to load currency directory", "error", err)
		os.Exit(1)
	}

	validator := validation.NewTransactionValidator(registry, validation.NewImpactValidator(directory))
	postingSvc := posting.NewService(transactionRepo, accountRepo, validator, db)

	catalogSvc := catalog.NewService(typeRepo, registry)
	if err := catalogSvc.Seed(ctx, rules.TypeLabels); err != nil {
		slog.Error("failed to seed transaction type catalog", "error", err)
		os.Exit(1)
	}

	transactionHandler := handler.NewTransactionHandler(postingSvc)
	typeHandler := handler.NewTransactionTypeHandler(catalogSvc)
	accountHandler := handler.NewAccountHandler(postingSvc)
	healthHandler := handler.NewHealthHandler(db)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("POST /api/v1/transactions", transactionHandler.Create)
	mux.HandleFunc("GET /api/v1/transactions/{id}", transactionHandler.Get)
	mux.HandleFunc("GET /api/v1/accounts/{id}/transactions", transactionHandler.ListByAccount)
	mux.HandleFunc("GET /api/v1/accounts/{id}/balance", accountHandler.Balance)

	mux.HandleFunc("GET /api/v1/transaction-types", typeHandler.List)
	mux.HandleFunc("POST /api/v1/transaction-types", typeHandler.Create)
	mux.HandleFunc("GET /api/v1/transaction-types/{id}", typeHandler.Get)
	mux.HandleFunc("PATCH /api/v1/transaction-types/{id}", typeHandler.Update)
	mux.HandleFunc("DELETE /api/v1/transaction-types/{id}", typeHandler.Delete)
	mux.HandleFunc("GET /api/v1/transaction-types/code/{code}", typeHandler.GetByCode)
	mux.HandleFunc("GET /api/v1/transaction-types/code/{code}/rules", typeHandler.GetRule)

	var root http.Handler = mux
	root = middleware.Recovery(root)
	root = middleware.Logging(root)
	root = middleware.Tracing(root)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
