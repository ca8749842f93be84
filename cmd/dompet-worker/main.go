package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dompet/internal/amqp"
	"dompet/internal/config"
	"dompet/internal/core"
	gexport "dompet/internal/export/google"
	applog "dompet/internal/log"
	"dompet/internal/services"
	"dompet/internal/storage"
	"dompet/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	applog.SetDefault(logger)

	logger.Info("Starting dompet-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// The worker reads the same ledger the server writes.
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	var exporter *gexport.Client
	if cfg.GoogleSpreadsheetID != "" {
		exporter, err = gexport.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	advice := core.DefaultAdviceConfig()
	advice.DailyDangerThreshold = cfg.DailyDangerThreshold
	advice.DailyWarnThreshold = cfg.DailyWarnThreshold

	var syncWorker *worker.SyncWorker
	if exporter != nil {
		reports := services.NewReportService(repo, advice)
		syncWorker = worker.NewSyncWorker(reports, exporter)

		// Catch up on anything that changed while the worker was down.
		logger.Info("Performing startup export of the current month...")
		if err := syncWorker.ExportCurrentMonth(ctx); err != nil {
			logger.Error("Startup export failed", "error", err)
			// Don't exit - continue with normal operation
		}
	} else {
		logger.Info("Skipping report export - no exporter available")
	}

	if syncWorker != nil {
		go func() {
			err := amqpClient.ConsumeLedgerEvents(ctx, func(msg *amqp.LedgerEventMessage) error {
				return syncWorker.HandleLedgerEvent(ctx, msg)
			})
			if err != nil && err != context.Canceled {
				logger.Error("Ledger event consumption failed", "error", err)
			}
			cancel()
		}()

		// Periodic resync covers lost or unroutable events.
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := syncWorker.ExportCurrentMonth(ctx); err != nil {
						logger.Error("Periodic export failed", "error", err)
					}
				}
			}
		}()
	} else {
		logger.Info("Skipping AMQP consumption - no sync worker available")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down worker...")
	cancel()
	time.Sleep(time.Second)
	logger.Info("Worker shutdown complete")
}
