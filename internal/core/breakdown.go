package core

import "sort"

// UncategorizedLabel stands in for transactions whose category was deleted
// or never resolved.
const UncategorizedLabel = "Uncategorized"

// CategoryAmount is an expense total attributed to one category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// BreakdownByCategory groups expense-type transactions by category name and
// ranks them largest first. Ties keep first-seen order, so repeated runs over
// the same input produce the same list. Percent-of-total is left to callers;
// this function never divides.
func BreakdownByCategory(transactions []Transaction) []CategoryAmount {
	totals := make(map[string]int64)
	var order []string

	for _, t := range transactions {
		if t.Category.Type == Income {
			continue
		}
		name := t.Category.Name
		if name == "" {
			name = UncategorizedLabel
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += t.Amount.Units
	}

	out := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryAmount{Name: name, Amount: Money{Units: totals[name]}})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Units > out[j].Amount.Units
	})
	return out
}
