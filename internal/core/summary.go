package core

// Summary is the income/expense/balance rollup for a transaction set.
// Balance is always exactly Income - Expense.
type Summary struct {
	Income  Money
	Expense Money
	Balance int64
}

// Summarize totals a range-filtered transaction set. Empty input yields
// all zeros.
func Summarize(transactions []Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		if t.Category.Type == Income {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expense = s.Expense.Add(t.Amount)
		}
		s.Balance += Signed(t)
	}
	return s
}
