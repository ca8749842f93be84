package core

import "testing"

func TestAdviseEmptyLedger(t *testing.T) {
	got := Advise(nil, NewDate(2025, 6, 12), DefaultAdviceConfig())
	if got.Severity != SeverityNeutral {
		t.Fatalf("empty ledger severity = %s, want neutral", got.Severity)
	}
}

// Daily threshold rules must win over the monthly deficit rule even when
// both conditions hold.
func TestAdvisePriorityOrder(t *testing.T) {
	today := NewDate(2025, 6, 12)
	txs := []Transaction{
		tx(today, 60_000, "Food", Expense), // above the 50k danger threshold
		tx(NewDate(2025, 6, 1), 10_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 500_000, "Rent", Expense), // deficit condition also true
	}

	got := Advise(txs, today, DefaultAdviceConfig())
	if got.Severity != SeverityDanger {
		t.Fatalf("severity = %s, want danger", got.Severity)
	}
	if got.Title != "Daily limit blown" {
		t.Fatalf("title = %q; daily threshold must outrank the deficit rule", got.Title)
	}
}

func TestAdviseDailyWarnBand(t *testing.T) {
	today := NewDate(2025, 6, 12)
	txs := []Transaction{
		tx(today, 35_000, "Food", Expense),
		tx(NewDate(2025, 6, 1), 1_000_000, "Salary", Income),
	}
	got := Advise(txs, today, DefaultAdviceConfig())
	if got.Severity != SeverityWarning || got.Title != "Careful today" {
		t.Fatalf("got (%s, %q), want the daily warning", got.Severity, got.Title)
	}
}

func TestAdviseDeficit(t *testing.T) {
	today := NewDate(2025, 6, 12)
	txs := []Transaction{
		tx(NewDate(2025, 6, 1), 100_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 150_000, "Rent", Expense),
	}
	got := Advise(txs, today, DefaultAdviceConfig())
	if got.Severity != SeverityDanger || got.Title != "Running a deficit" {
		t.Fatalf("got (%s, %q), want the deficit alert", got.Severity, got.Title)
	}
}

func TestAdviseConcentration(t *testing.T) {
	today := NewDate(2025, 6, 12)
	// Expense is half of income (not deficit, not >80% ratio) but one
	// category holds 90% of spend.
	txs := []Transaction{
		tx(NewDate(2025, 6, 1), 1_000_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 540_000, "Shopping", Expense),
		tx(NewDate(2025, 6, 3), 60_000, "Food", Expense),
	}
	got := Advise(txs, today, DefaultAdviceConfig())
	if got.Title != "Spending pattern" {
		t.Fatalf("title = %q, want the concentration warning", got.Title)
	}
}

func TestAdvisePraiseAndHealthy(t *testing.T) {
	today := NewDate(2025, 6, 12)

	lean := []Transaction{
		tx(NewDate(2025, 6, 1), 1_000_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 150_000, "Food", Expense),
		tx(NewDate(2025, 6, 3), 130_000, "Rent", Expense),
		tx(NewDate(2025, 6, 4), 110_000, "Transport", Expense),
	}
	if got := Advise(lean, today, DefaultAdviceConfig()); got.Severity != SeverityPraise {
		t.Fatalf("lean month severity = %s, want praise", got.Severity)
	}

	// 60% ratio, no dominant category: neutral healthy verdict.
	steady := []Transaction{
		tx(NewDate(2025, 6, 1), 1_000_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 220_000, "Food", Expense),
		tx(NewDate(2025, 6, 3), 200_000, "Rent", Expense),
		tx(NewDate(2025, 6, 4), 180_000, "Transport", Expense),
	}
	if got := Advise(steady, today, DefaultAdviceConfig()); got.Severity != SeverityNeutral {
		t.Fatalf("steady month severity = %s, want neutral", got.Severity)
	}
}

func TestAdviseHighRatioCaution(t *testing.T) {
	today := NewDate(2025, 6, 12)
	txs := []Transaction{
		tx(NewDate(2025, 6, 1), 1_000_000, "Salary", Income),
		tx(NewDate(2025, 6, 2), 300_000, "Food", Expense),
		tx(NewDate(2025, 6, 3), 300_000, "Rent", Expense),
		tx(NewDate(2025, 6, 4), 250_000, "Transport", Expense),
	}
	got := Advise(txs, today, DefaultAdviceConfig())
	if got.Severity != SeverityCaution {
		t.Fatalf("85%% ratio severity = %s, want caution", got.Severity)
	}
}
