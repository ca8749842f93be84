package core

import "fmt"

const (
	SubscriptionPaid     SubscriptionState = "paid"
	SubscriptionDueToday SubscriptionState = "due_today"
	SubscriptionOverdue  SubscriptionState = "overdue"
	SubscriptionDueSoon  SubscriptionState = "due_soon"
	SubscriptionUpcoming SubscriptionState = "upcoming"

	// Unpaid bills within this many days of the due day get the warning
	// treatment.
	dueSoonWindowDays = 3
)

type (
	SubscriptionState string

	// SubscriptionStatus is a subscription reconciled against the current
	// period's transactions.
	SubscriptionStatus struct {
		Subscription Subscription
		Paid         bool
		State        SubscriptionState
		// DaysDelta is dueDay - today for unpaid bills: negative once
		// overdue, zero on the due day.
		DaysDelta int
		Label     string
	}

	// BillingSummary is the rollup across all subscriptions for the
	// period.
	BillingSummary struct {
		Total     Money
		Paid      Money
		Remaining Money
	}
)

// ReconcileSubscriptions determines the payment status of each subscription
// for the current period. A subscription is paid when some transaction in
// the period carries its name as description, compared under the matcher
// (exact normalized equality, not substring). There is no stored link
// between the two records.
func ReconcileSubscriptions(subs []Subscription, periodTransactions []Transaction, today Date, matcher TagMatcher) ([]SubscriptionStatus, BillingSummary) {
	if matcher == nil {
		matcher = FoldMatcher{}
	}
	var summary BillingSummary
	out := make([]SubscriptionStatus, 0, len(subs))

	for _, sub := range subs {
		paid := false
		for _, t := range periodTransactions {
			if matcher.Match(t.Description, sub.Name) {
				paid = true
				break
			}
		}

		summary.Total = summary.Total.Add(sub.Amount)
		if paid {
			summary.Paid = summary.Paid.Add(sub.Amount)
		}

		out = append(out, statusOf(sub, paid, today.Day()))
	}

	summary.Remaining = summary.Total.Sub(summary.Paid)
	return out, summary
}

func statusOf(sub Subscription, paid bool, todayDay int) SubscriptionStatus {
	st := SubscriptionStatus{Subscription: sub, Paid: paid}
	if paid {
		st.State = SubscriptionPaid
		st.Label = "Paid"
		return st
	}

	diff := sub.DueDay - todayDay
	st.DaysDelta = diff
	switch {
	case diff == 0:
		st.State = SubscriptionDueToday
		st.Label = "Due today"
	case diff < 0:
		st.State = SubscriptionOverdue
		st.Label = fmt.Sprintf("Overdue by %d days", -diff)
	case diff <= dueSoonWindowDays:
		st.State = SubscriptionDueSoon
		st.Label = fmt.Sprintf("Due in %d days", diff)
	default:
		st.State = SubscriptionUpcoming
		st.Label = fmt.Sprintf("%d days until due", diff)
	}
	return st
}

// PaymentDraft materializes the pay-now transaction for a subscription:
// amount, category and wallet tag come from the subscription, the
// description is the subscription's name so the next reconciliation run
// finds it, and the date is today. The caller assigns the ID before insert.
func PaymentDraft(sub Subscription, today Date) Transaction {
	return Transaction{
		Date:        today,
		Amount:      sub.Amount,
		Category:    Category{ID: sub.CategoryID},
		Description: sub.Name,
		WalletTag:   sub.WalletTag,
	}
}
