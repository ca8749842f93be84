package core

import "testing"

func paymentTx(description string, units int64) Transaction {
	t := tx(NewDate(2025, 6, 12), units, "Bills", Expense)
	t.Description = description
	return t
}

func TestReconcileSubscriptionsStatuses(t *testing.T) {
	today := NewDate(2025, 6, 12) // day-of-month 12
	subs := []Subscription{
		{Name: "Netflix", Amount: Money{Units: 54_000}, DueDay: 10},
		{Name: "Spotify", Amount: Money{Units: 27_000}, DueDay: 12},
		{Name: "Gym", Amount: Money{Units: 150_000}, DueDay: 14},
		{Name: "Rent", Amount: Money{Units: 900_000}, DueDay: 25},
	}

	statuses, _ := ReconcileSubscriptions(subs, nil, today, nil)

	want := []struct {
		state SubscriptionState
		label string
	}{
		{SubscriptionOverdue, "Overdue by 2 days"},
		{SubscriptionDueToday, "Due today"},
		{SubscriptionDueSoon, "Due in 2 days"},
		{SubscriptionUpcoming, "13 days until due"},
	}
	for i, w := range want {
		if statuses[i].State != w.state || statuses[i].Label != w.label {
			t.Fatalf("sub %d: got (%s, %q), want (%s, %q)",
				i, statuses[i].State, statuses[i].Label, w.state, w.label)
		}
	}
}

func TestReconcileSubscriptionsPaidByNameMatch(t *testing.T) {
	today := NewDate(2025, 6, 12)
	subs := []Subscription{{Name: "Netflix", Amount: Money{Units: 54_000}, DueDay: 10}}

	// Case-insensitive exact match marks it paid.
	statuses, _ := ReconcileSubscriptions(subs, []Transaction{paymentTx("netflix", 54_000)}, today, nil)
	if !statuses[0].Paid || statuses[0].Label != "Paid" {
		t.Fatalf("expected paid, got %+v", statuses[0])
	}

	// Substring is not a match.
	statuses, _ = ReconcileSubscriptions(subs, []Transaction{paymentTx("netflix family plan", 54_000)}, today, nil)
	if statuses[0].Paid {
		t.Fatalf("substring description must not mark the bill paid")
	}
}

func TestReconcileSubscriptionsBillingSummary(t *testing.T) {
	today := NewDate(2025, 6, 12)
	subs := []Subscription{
		{Name: "Netflix", Amount: Money{Units: 54_000}, DueDay: 10},
		{Name: "Gym", Amount: Money{Units: 150_000}, DueDay: 20},
	}
	_, summary := ReconcileSubscriptions(subs, []Transaction{paymentTx("Netflix", 54_000)}, today, nil)

	if summary.Total.Units != 204_000 {
		t.Fatalf("total = %d, want 204000", summary.Total.Units)
	}
	if summary.Paid.Units != 54_000 {
		t.Fatalf("paid = %d, want 54000", summary.Paid.Units)
	}
	if summary.Remaining.Units != 150_000 {
		t.Fatalf("remaining = %d, want 150000", summary.Remaining.Units)
	}
}

func TestPaymentDraftBridgesReconciliation(t *testing.T) {
	sub := Subscription{
		Name:       "Netflix",
		Amount:     Money{Units: 54_000},
		CategoryID: "bills",
		WalletTag:  "Tf mandiri",
		DueDay:     10,
	}
	today := NewDate(2025, 6, 12)

	draft := PaymentDraft(sub, today)
	if draft.Description != "Netflix" || draft.Amount.Units != 54_000 || draft.WalletTag != "Tf mandiri" {
		t.Fatalf("draft fields wrong: %+v", draft)
	}
	if !draft.Date.Equal(today.Time) {
		t.Fatalf("draft date = %s, want today", draft.Date.Format("2006-01-02"))
	}

	// The produced transaction must flip the bill to paid on the next run.
	paid := draft
	paid.Category.Type = Expense
	statuses, _ := ReconcileSubscriptions([]Subscription{sub}, []Transaction{paid}, today, nil)
	if !statuses[0].Paid {
		t.Fatalf("pay-now transaction did not reconcile as paid")
	}
}
