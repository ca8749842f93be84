package core

import (
	"errors"
	"fmt"
)

const (
	BudgetStatusSafe    BudgetStatus = "safe"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"

	// Band thresholds for budget progress, in percent.
	BudgetWarnPercent = 75.0
	BudgetOverPercent = 100.0
)

type (
	BudgetStatus string

	// BudgetProgress is the read-side view of one budgeted category for
	// the current period.
	BudgetProgress struct {
		CategoryID   string
		CategoryName string
		Cap          Money
		Spent        Money
		// Percentage is clamped to [0, 100]. A zero cap reads as 0,
		// never a division error.
		Percentage float64
		Status     BudgetStatus
	}
)

// ErrBudgetExceedsIncome marks guard rejections; unwrap the
// *BudgetExceedsIncomeError for the remaining allocatable amount.
var ErrBudgetExceedsIncome = errors.New("budget exceeds month income")

// BudgetExceedsIncomeError reports a rejected allocation together with how
// much could still be allocated, so callers can surface a self-correcting
// message without re-querying.
type BudgetExceedsIncomeError struct {
	CategoryID string
	Proposed   Money
	Income     Money
	Remaining  int64
}

func (e *BudgetExceedsIncomeError) Error() string {
	return fmt.Sprintf("budget %d for category %s exceeds month income %d (remaining allocatable: %d)",
		e.Proposed.Units, e.CategoryID, e.Income.Units, e.Remaining)
}

func (e *BudgetExceedsIncomeError) Unwrap() error { return ErrBudgetExceedsIncome }

// CheckAllocation validates a proposed cap for one category against the
// month's income. A new allocation for an already-budgeted category replaces
// the old cap, it does not add to it, so the old amount is backed out of the
// projection first. The caps themselves are never clamped.
func CheckAllocation(existing []Budget, monthIncome Money, categoryID string, amount Money) error {
	var sum, old int64
	for _, b := range existing {
		sum += b.Amount.Units
		if b.CategoryID == categoryID {
			old = b.Amount.Units
		}
	}
	allocated := sum - old
	if allocated+amount.Units > monthIncome.Units {
		return &BudgetExceedsIncomeError{
			CategoryID: categoryID,
			Proposed:   amount,
			Income:     monthIncome,
			Remaining:  monthIncome.Units - allocated,
		}
	}
	return nil
}

// TrackProgress computes per-category spend against each cap from the
// period's transactions. Only expense-type transactions count as spend.
func TrackProgress(budgets []Budget, periodTransactions []Transaction) []BudgetProgress {
	spent := make(map[string]int64)
	for _, t := range periodTransactions {
		if t.Category.Type == Income {
			continue
		}
		spent[t.Category.ID] += t.Amount.Units
	}

	out := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		p := BudgetProgress{
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			Cap:          b.Amount,
			Spent:        Money{Units: spent[b.CategoryID]},
		}
		if b.Amount.Units > 0 {
			pct := float64(p.Spent.Units) / float64(b.Amount.Units) * 100
			if pct > 100 {
				pct = 100
			}
			p.Percentage = pct
		}
		switch {
		case p.Percentage >= BudgetOverPercent:
			p.Status = BudgetStatusOver
		case p.Percentage >= BudgetWarnPercent:
			p.Status = BudgetStatusWarning
		default:
			p.Status = BudgetStatusSafe
		}
		out = append(out, p)
	}
	return out
}
