package services

import (
	"context"
	"testing"

	"dompet/internal/core"
	"dompet/internal/ledger/memory"
)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	must(store.CreateCategory(ctx, core.Category{ID: "salary", Name: "Salary", Type: core.Income}))
	must(store.CreateCategory(ctx, core.Category{ID: "food", Name: "Food", Type: core.Expense}))
	must(store.CreateCategory(ctx, core.Category{ID: "rent", Name: "Rent", Type: core.Expense}))

	rows := []core.Transaction{
		{ID: "t1", Date: core.NewDate(2025, 6, 1), Amount: core.Money{Units: 1_000_000}, Category: core.Category{ID: "salary"}, Description: "payday", WalletTag: "bank"},
		{ID: "t2", Date: core.NewDate(2025, 6, 5), Amount: core.Money{Units: 300_000}, Category: core.Category{ID: "rent"}, Description: "rent june", WalletTag: "bank"},
		{ID: "t3", Date: core.NewDate(2025, 6, 12), Amount: core.Money{Units: 40_000}, Category: core.Category{ID: "food"}, Description: "groceries", WalletTag: "cash"},
		{ID: "t4", Date: core.NewDate(2025, 7, 2), Amount: core.Money{Units: 20_000}, Category: core.Category{ID: "food"}, Description: "groceries", WalletTag: "cash"},
	}
	for _, tx := range rows {
		must(store.Insert(ctx, tx))
	}
	return store
}

func TestBuildReportMonth(t *testing.T) {
	store := seedStore(t)
	svc := NewReportService(store, core.DefaultAdviceConfig())

	report, err := svc.BuildReport(context.Background(), core.NewDate(2025, 6, 15), core.PeriodMonth, core.GranularityDay)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.Summary.Income.Units != 1_000_000 {
		t.Fatalf("income = %d, want 1000000", report.Summary.Income.Units)
	}
	if report.Summary.Expense.Units != 340_000 {
		t.Fatalf("expense = %d, want 340000 (July row must be excluded)", report.Summary.Expense.Units)
	}
	if report.Summary.Balance != 660_000 {
		t.Fatalf("balance = %d, want 660000", report.Summary.Balance)
	}

	if len(report.ByCategory) != 2 || report.ByCategory[0].Name != "Rent" {
		t.Fatalf("breakdown = %+v, want Rent first", report.ByCategory)
	}
	// Every transaction owns a bucket, so the income-only payday shows
	// up as a third day with a zero expense total.
	if len(report.Timeline.Buckets) != 3 {
		t.Fatalf("buckets = %d, want 3 days", len(report.Timeline.Buckets))
	}
	for _, b := range report.Timeline.Buckets {
		if b.Key == "2025-06-01" && b.Total.Units != 0 {
			t.Fatalf("income-only day total = %d, want 0", b.Total.Units)
		}
	}
	if report.Advice.Severity == "" {
		t.Fatalf("advice missing: %+v", report.Advice)
	}
}

func TestBuildReportEmptyPeriod(t *testing.T) {
	store := seedStore(t)
	svc := NewReportService(store, core.DefaultAdviceConfig())

	report, err := svc.BuildReport(context.Background(), core.NewDate(2024, 1, 10), core.PeriodMonth, core.GranularityDay)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Summary.Income.Units != 0 || report.Summary.Expense.Units != 0 {
		t.Fatalf("expected zero summary, got %+v", report.Summary)
	}
	if report.Advice.Severity != core.SeverityNeutral {
		t.Fatalf("empty period advice = %+v, want neutral", report.Advice)
	}
}
