package worker

import (
	"context"
	"errors"
	"testing"

	"dompet/internal/amqp"
	"dompet/internal/core"
	"dompet/internal/export"
	"dompet/internal/ledger/memory"
	"dompet/internal/services"
)

type recordingExporter struct {
	reports []export.MonthlyReport
	err     error
}

func (e *recordingExporter) ExportMonthlyReport(ctx context.Context, r export.MonthlyReport) error {
	if e.err != nil {
		return e.err
	}
	e.reports = append(e.reports, r)
	return nil
}

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	categories := []core.Category{
		{ID: "salary", Name: "Salary", Type: core.Income},
		{ID: "food", Name: "Food", Type: core.Expense},
	}
	for _, c := range categories {
		if err := store.CreateCategory(ctx, c); err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	rows := []core.Transaction{
		{ID: "t1", Date: core.NewDate(2025, 6, 1), Amount: core.Money{Units: 1_000_000}, Category: core.Category{ID: "salary"}, WalletTag: "bank"},
		{ID: "t2", Date: core.NewDate(2025, 6, 12), Amount: core.Money{Units: 40_000}, Category: core.Category{ID: "food"}, WalletTag: "cash"},
	}
	for _, tx := range rows {
		if err := store.Insert(ctx, tx); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	return store
}

func newWorker(t *testing.T, exporter export.ReportExporter) *SyncWorker {
	t.Helper()
	reports := services.NewReportService(seedStore(t), core.DefaultAdviceConfig())
	return NewSyncWorker(reports, exporter)
}

func TestHandleLedgerEvent(t *testing.T) {
	exporter := &recordingExporter{}
	w := newWorker(t, exporter)

	msg := amqp.NewLedgerEventMessage("t2", amqp.EventPosted, "2025-06-12")
	if err := w.HandleLedgerEvent(context.Background(), msg); err != nil {
		t.Fatalf("HandleLedgerEvent: %v", err)
	}

	if len(exporter.reports) != 1 {
		t.Fatalf("exported %d reports, want 1", len(exporter.reports))
	}
	got := exporter.reports[0]
	if got.Year != 2025 || got.Month != 6 {
		t.Errorf("report for %d-%d, want 2025-6", got.Year, got.Month)
	}
	if got.Summary.Income.Units != 1_000_000 {
		t.Errorf("income = %d, want 1000000", got.Summary.Income.Units)
	}
	if got.Summary.Expense.Units != 40_000 {
		t.Errorf("expense = %d, want 40000", got.Summary.Expense.Units)
	}
	if len(got.ByCategory) != 1 || got.ByCategory[0].Name != "Food" {
		t.Errorf("breakdown = %+v", got.ByCategory)
	}
}

func TestHandleLedgerEventBadDate(t *testing.T) {
	exporter := &recordingExporter{}
	w := newWorker(t, exporter)

	msg := amqp.NewLedgerEventMessage("t9", amqp.EventDeleted, "12/06/2025")
	if err := w.HandleLedgerEvent(context.Background(), msg); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if len(exporter.reports) != 0 {
		t.Fatalf("exported %d reports, want 0", len(exporter.reports))
	}
}

func TestExportMonthPropagatesExporterError(t *testing.T) {
	wantErr := errors.New("sheet unavailable")
	w := newWorker(t, &recordingExporter{err: wantErr})

	err := w.ExportMonth(context.Background(), core.NewDate(2025, 6, 15))
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestExportMonthEmptyPeriod(t *testing.T) {
	exporter := &recordingExporter{}
	w := newWorker(t, exporter)

	if err := w.ExportMonth(context.Background(), core.NewDate(2024, 1, 10)); err != nil {
		t.Fatalf("ExportMonth: %v", err)
	}
	if len(exporter.reports) != 1 {
		t.Fatalf("exported %d reports, want 1", len(exporter.reports))
	}
	if got := exporter.reports[0]; got.Summary.Income.Units != 0 || got.Summary.Expense.Units != 0 {
		t.Fatalf("summary = %+v, want zeroes", got.Summary)
	}
}
