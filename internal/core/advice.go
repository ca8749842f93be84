package core

import "fmt"

const (
	SeverityNeutral Severity = "neutral"
	SeverityCaution Severity = "caution"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityPraise  Severity = "praise"
)

type (
	Severity string

	// Advice is the single verdict of the spending rule engine.
	Advice struct {
		Title    string
		Message  string
		Severity Severity
	}

	// AdviceConfig carries the rule thresholds. They are configuration,
	// never derived from user data.
	AdviceConfig struct {
		// Daily spend thresholds, in minor units.
		DailyDangerThreshold int64
		DailyWarnThreshold   int64
		// ConcentrationShare flags a single category dominating spend.
		ConcentrationShare float64
		// Expense/income ratios for the caution and praise verdicts.
		HighExpenseRatio    float64
		HealthyExpenseRatio float64
	}
)

// DefaultAdviceConfig returns the stock thresholds.
func DefaultAdviceConfig() AdviceConfig {
	return AdviceConfig{
		DailyDangerThreshold: 50_000,
		DailyWarnThreshold:   30_000,
		ConcentrationShare:   0.4,
		HighExpenseRatio:     0.8,
		HealthyExpenseRatio:  0.5,
	}
}

// Advise evaluates the alert rules over the month's transactions, first
// match wins. It is stateless: nothing carries over between evaluations,
// the verdict is recomputed from scratch whenever the ledger changes.
func Advise(transactions []Transaction, today Date, cfg AdviceConfig) Advice {
	if len(transactions) == 0 {
		return Advice{
			Title:    "Nothing here yet",
			Message:  "Record your first transaction to get started.",
			Severity: SeverityNeutral,
		}
	}

	summary := Summarize(transactions)

	var todayExpense int64
	for _, t := range transactions {
		if t.Category.Type != Income && t.Date.Equal(today.Time) {
			todayExpense += t.Amount.Units
		}
	}

	// Daily limits outrank everything else.
	if todayExpense > cfg.DailyDangerThreshold {
		return Advice{
			Title:    "Daily limit blown",
			Message:  fmt.Sprintf("Spent %d today. Stop spending!", todayExpense),
			Severity: SeverityDanger,
		}
	}
	if todayExpense > cfg.DailyWarnThreshold {
		return Advice{
			Title:    "Careful today",
			Message:  fmt.Sprintf("Spent %d today already. Ease off.", todayExpense),
			Severity: SeverityWarning,
		}
	}

	income := summary.Income.Units
	expense := summary.Expense.Units

	if expense > income && income > 0 {
		return Advice{
			Title:    "Running a deficit",
			Message:  fmt.Sprintf("Spending exceeds income by %d this month.", expense-income),
			Severity: SeverityDanger,
		}
	}

	if expense > 0 {
		if top := BreakdownByCategory(transactions); len(top) > 0 {
			share := float64(top[0].Amount.Units) / float64(expense)
			if share > cfg.ConcentrationShare {
				return Advice{
					Title:    "Spending pattern",
					Message:  fmt.Sprintf("%q takes most of your spending. Cut back there first.", top[0].Name),
					Severity: SeverityWarning,
				}
			}
		}
	}

	if income > 0 {
		ratio := float64(expense) / float64(income)
		if ratio > cfg.HighExpenseRatio {
			return Advice{
				Title:    "Watch it",
				Message:  "More than 80% of income is spent. Savings mode on.",
				Severity: SeverityCaution,
			}
		}
		if ratio < cfg.HealthyExpenseRatio {
			return Advice{
				Title:    "In great shape",
				Message:  "Spending is under half of income. Keep it up!",
				Severity: SeverityPraise,
			}
		}
	}

	return Advice{
		Title:    "All good",
		Message:  "Cash flow looks healthy.",
		Severity: SeverityNeutral,
	}
}
