package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dompet/internal/amqp"
	"dompet/internal/config"
	"dompet/internal/core"
	apphttp "dompet/internal/http"
	"dompet/internal/ledger"
	"dompet/internal/ledger/memory"
	applog "dompet/internal/log"
	"dompet/internal/services"
	"dompet/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var store ledger.Store
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		store = repo
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		mem := memory.New()
		seedMemoryDefaults(mem)
		store = mem
		logger.Info("Initialized memory backend")
	}

	// AMQP is optional. Without it writes still land, only the report
	// export pipeline goes quiet.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, ledger events will not be published", "error", err)
		} else {
			amqpClient = client
			defer amqpClient.Close()
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	advice := core.DefaultAdviceConfig()
	advice.DailyDangerThreshold = cfg.DailyDangerThreshold
	advice.DailyWarnThreshold = cfg.DailyWarnThreshold

	svc := apphttp.Services{
		Reports:       services.NewReportService(store, advice),
		Budgets:       services.NewBudgetService(store, store),
		Wallets:       services.NewWalletService(store, store),
		Subscriptions: services.NewSubscriptionService(store, store, store, amqpClient),
		Transactions:  services.NewTransactionService(store, store, amqpClient),
		Categories:    services.NewCategoryService(store),
	}

	srv := apphttp.NewServer(":"+cfg.Port, svc, apphttp.Options{
		BudgetOwner: cfg.BudgetOwner,
		CacheSize:   cfg.CacheSize,
		CacheTTL:    cfg.CacheTTL,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting dompet server", "port", cfg.Port, "backend", cfg.DataBackend, "owner", cfg.BudgetOwner)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// seedMemoryDefaults gives the in-memory backend the same starting
// catalog the sqlite migrations install.
func seedMemoryDefaults(store *memory.Store) {
	ctx := context.Background()
	categories := []core.Category{
		{ID: "salary", Name: "Salary", Type: core.Income},
		{ID: "bonus", Name: "Bonus", Type: core.Income},
		{ID: "other-income", Name: "Other Income", Type: core.Income},
		{ID: "food", Name: "Food & Drinks", Type: core.Expense},
		{ID: "transport", Name: "Transport", Type: core.Expense},
		{ID: "housing", Name: "Housing", Type: core.Expense},
		{ID: "entertainment", Name: "Entertainment", Type: core.Expense},
		{ID: "health", Name: "Health", Type: core.Expense},
		{ID: "shopping", Name: "Shopping", Type: core.Expense},
		{ID: "other-expense", Name: "Other Expense", Type: core.Expense},
	}
	for _, c := range categories {
		_ = store.CreateCategory(ctx, c)
	}
	store.SeedWallet(core.Wallet{ID: "cash", Name: "Cash"})
	store.SeedWallet(core.Wallet{ID: "bank", Name: "Bank"})
}
