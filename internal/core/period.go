package core

import (
	"fmt"
)

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

type (
	PeriodKind string

	// Range is an inclusive calendar-date range.
	Range struct {
		Start Date
		End   Date
	}
)

// Contains reports whether d falls inside the range, ends included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// AllTime is the range that contains every storable date. Wallet
// reconciliation runs over the whole ledger, not a period.
func AllTime() Range {
	return Range{
		Start: NewDate(1970, 1, 1),
		End:   NewDate(9999, 12, 31),
	}
}

// ResolvePeriod maps a reference date and a period kind to the inclusive
// date range covering it. Weeks run Monday through Sunday (ISO 8601).
// An unknown kind is a programmer error and panics.
func ResolvePeriod(ref Date, kind PeriodKind) Range {
	switch kind {
	case PeriodWeek:
		// time.Weekday has Sunday == 0; shift so Monday == 0.
		offset := (int(ref.Weekday()) + 6) % 7
		start := ref.AddDate(0, 0, -offset)
		return Range{
			Start: DateOf(start),
			End:   DateOf(start.AddDate(0, 0, 6)),
		}
	case PeriodMonth:
		start := NewDate(ref.Year(), ref.Month(), 1)
		return Range{
			Start: start,
			End:   DateOf(start.AddDate(0, 1, -1)),
		}
	case PeriodYear:
		return Range{
			Start: NewDate(ref.Year(), 1, 1),
			End:   NewDate(ref.Year(), 12, 31),
		}
	}
	panic(fmt.Sprintf("unknown period kind %q", kind))
}
