package core

import "testing"

func TestSummarize(t *testing.T) {
	d := NewDate(2025, 6, 1)
	txs := []Transaction{
		tx(d, 1_000_000, "Salary", Income),
		tx(d, 250_000, "Food", Expense),
		tx(d, 100_000, "Transport", Expense),
		tx(d, 50_000, "Bonus", Income),
	}

	s := Summarize(txs)
	if s.Income.Units != 1_050_000 {
		t.Fatalf("income = %d, want 1050000", s.Income.Units)
	}
	if s.Expense.Units != 350_000 {
		t.Fatalf("expense = %d, want 350000", s.Expense.Units)
	}
	if s.Balance != 700_000 {
		t.Fatalf("balance = %d, want 700000", s.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Income.Units != 0 || s.Expense.Units != 0 || s.Balance != 0 {
		t.Fatalf("empty input must yield zeros, got %+v", s)
	}
}

// The balance identity must hold exactly for any input, expense-heavy or
// income-heavy.
func TestSummarizeBalanceIdentity(t *testing.T) {
	d := NewDate(2025, 6, 1)
	sets := [][]Transaction{
		nil,
		{tx(d, 10, "A", Expense)},
		{tx(d, 10, "A", Income)},
		{tx(d, 7, "A", Income), tx(d, 13, "B", Expense), tx(d, 29, "C", Expense)},
	}
	for i, txs := range sets {
		s := Summarize(txs)
		if s.Income.Units-s.Expense.Units != s.Balance {
			t.Fatalf("set %d: income %d - expense %d != balance %d",
				i, s.Income.Units, s.Expense.Units, s.Balance)
		}
	}
}
