// Package core holds the pure ledger computations: period resolution,
// aggregation, reconciliation and the alert rules. Nothing in here performs
// I/O or keeps state between calls.
package core

import (
	"github.com/shopspring/decimal"
)

// Money is an amount in currency minor units. Keeping amounts integral
// avoids floating-point drift in sums; display formatting belongs to
// callers.
type Money struct {
	Units int64
}

func (m Money) Validate() error {
	if m.Units <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money { return Money{Units: m.Units + other.Units} }

// Sub returns m - other. The result may be negative.
func (m Money) Sub(other Money) Money { return Money{Units: m.Units - other.Units} }

// ParseAmount converts a decimal string to Money with half-up rounding on
// the third decimal place. Both "12.34" and "12,34" are accepted. Negative
// and zero amounts are rejected; transaction amounts are unsigned by
// construction.
func ParseAmount(s string) (Money, error) {
	m, err := parseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	if m.Units <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

// ParseCap parses a budget cap. Unlike transaction amounts a cap of zero
// is meaningful: the category is tracked but nothing is allocated to it.
func ParseCap(s string) (Money, error) {
	m, err := parseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	if m.Units < 0 {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

func parseDecimal(s string) (Money, error) {
	d, err := decimal.NewFromString(normalizeDecimal(s))
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{Units: d.Shift(2).Round(0).IntPart()}, nil
}

func normalizeDecimal(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ',':
			out = append(out, '.')
		case ' ', '\t':
			// ignore
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Signed returns the transaction's contribution to a balance: positive for
// income-category transactions, negative otherwise. Every aggregation site
// (summary, wallet, timeline) derives sign through this one helper.
func Signed(t Transaction) int64 {
	if t.Category.Type == Income {
		return t.Amount.Units
	}
	return -t.Amount.Units
}
