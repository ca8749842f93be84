package core

import (
	"reflect"
	"testing"
)

func TestBreakdownByCategory(t *testing.T) {
	d := NewDate(2025, 6, 1)
	txs := []Transaction{
		tx(d, 100_000, "Salary", Income), // income excluded
		tx(d, 30_000, "Food", Expense),
		tx(d, 80_000, "Rent", Expense),
		tx(d, 20_000, "Food", Expense),
	}

	got := BreakdownByCategory(txs)
	want := []CategoryAmount{
		{Name: "Rent", Amount: Money{Units: 80_000}},
		{Name: "Food", Amount: Money{Units: 50_000}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown = %+v, want %+v", got, want)
	}
}

func TestBreakdownTiesKeepFirstSeenOrder(t *testing.T) {
	d := NewDate(2025, 6, 1)
	txs := []Transaction{
		tx(d, 10_000, "Zeta", Expense),
		tx(d, 10_000, "Alpha", Expense),
	}
	got := BreakdownByCategory(txs)
	if got[0].Name != "Zeta" || got[1].Name != "Alpha" {
		t.Fatalf("tie order = [%s %s], want first-seen [Zeta Alpha]", got[0].Name, got[1].Name)
	}
}

func TestBreakdownMissingCategory(t *testing.T) {
	d := NewDate(2025, 6, 1)
	orphan := Transaction{
		Date:     d,
		Amount:   Money{Units: 5_000},
		Category: Category{Type: Expense}, // name lost with the category
	}
	got := BreakdownByCategory([]Transaction{orphan})
	if len(got) != 1 || got[0].Name != UncategorizedLabel {
		t.Fatalf("got %+v, want single %q entry", got, UncategorizedLabel)
	}
}

func TestBreakdownIdempotent(t *testing.T) {
	d := NewDate(2025, 6, 1)
	txs := []Transaction{
		tx(d, 30_000, "Food", Expense),
		tx(d, 30_000, "Transport", Expense),
		tx(d, 80_000, "Rent", Expense),
	}
	first := BreakdownByCategory(txs)
	second := BreakdownByCategory(txs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs over the same input disagree: %+v vs %+v", first, second)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	if got := BreakdownByCategory(nil); len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", got)
	}
}
