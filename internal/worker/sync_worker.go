// Package worker consumes ledger events and keeps the exported monthly
// reports in step with the ledger.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dompet/internal/amqp"
	"dompet/internal/core"
	"dompet/internal/export"
	"dompet/internal/services"
)

const dateLayout = "2006-01-02"

// SyncWorker rebuilds the monthly report touched by a ledger event and
// pushes it to the configured exporter.
type SyncWorker struct {
	reports  *services.ReportService
	exporter export.ReportExporter
}

func NewSyncWorker(reports *services.ReportService, exporter export.ReportExporter) *SyncWorker {
	return &SyncWorker{
		reports:  reports,
		exporter: exporter,
	}
}

// HandleLedgerEvent processes a single ledger event from AMQP. Every
// event kind triggers the same work: the month the transaction lives in
// is re-aggregated and re-exported in full.
func (w *SyncWorker) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	slog.InfoContext(ctx, "Processing ledger event",
		"transaction_id", msg.TransactionID,
		"kind", msg.Kind,
		"date", msg.Date)

	day, err := time.Parse(dateLayout, msg.Date)
	if err != nil {
		return fmt.Errorf("parse event date %q: %w", msg.Date, err)
	}

	return w.ExportMonth(ctx, core.DateOf(day))
}

// ExportCurrentMonth re-exports the month containing today. Called at
// startup and on the periodic tick to recover from missed events.
func (w *SyncWorker) ExportCurrentMonth(ctx context.Context) error {
	return w.ExportMonth(ctx, core.DateOf(time.Now()))
}

// ExportMonth aggregates the month around ref and writes it out.
func (w *SyncWorker) ExportMonth(ctx context.Context, ref core.Date) error {
	report, err := w.reports.BuildReport(ctx, ref, core.PeriodMonth, core.GranularityDay)
	if err != nil {
		return fmt.Errorf("build monthly report: %w", err)
	}

	monthly := export.MonthlyReport{
		Year:       ref.Year(),
		Month:      ref.Month(),
		Summary:    report.Summary,
		ByCategory: report.ByCategory,
	}
	if err := w.exporter.ExportMonthlyReport(ctx, monthly); err != nil {
		return fmt.Errorf("export monthly report: %w", err)
	}

	slog.InfoContext(ctx, "Exported monthly report",
		"year", monthly.Year,
		"month", monthly.Month,
		"income_units", monthly.Summary.Income.Units,
		"expense_units", monthly.Summary.Expense.Units,
		"categories", len(monthly.ByCategory))

	return nil
}
