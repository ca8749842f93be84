package core

import "testing"

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		name  string
		ref   Date
		kind  PeriodKind
		start Date
		end   Date
	}{
		// 2025-06-11 is a Wednesday; ISO week runs Mon 9th - Sun 15th.
		{"week midweek", NewDate(2025, 6, 11), PeriodWeek, NewDate(2025, 6, 9), NewDate(2025, 6, 15)},
		{"week on monday", NewDate(2025, 6, 9), PeriodWeek, NewDate(2025, 6, 9), NewDate(2025, 6, 15)},
		{"week on sunday", NewDate(2025, 6, 15), PeriodWeek, NewDate(2025, 6, 9), NewDate(2025, 6, 15)},
		{"week across month edge", NewDate(2025, 7, 1), PeriodWeek, NewDate(2025, 6, 30), NewDate(2025, 7, 6)},
		{"month", NewDate(2025, 6, 11), PeriodMonth, NewDate(2025, 6, 1), NewDate(2025, 6, 30)},
		{"month february leap", NewDate(2024, 2, 10), PeriodMonth, NewDate(2024, 2, 1), NewDate(2024, 2, 29)},
		{"year", NewDate(2025, 6, 11), PeriodYear, NewDate(2025, 1, 1), NewDate(2025, 12, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ResolvePeriod(tc.ref, tc.kind)
			if !r.Start.Equal(tc.start.Time) || !r.End.Equal(tc.end.Time) {
				t.Fatalf("got [%s, %s], want [%s, %s]",
					r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"),
					tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"))
			}
		})
	}
}

func TestResolvePeriodUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown kind")
		}
	}()
	ResolvePeriod(NewDate(2025, 1, 1), PeriodKind("fortnight"))
}

func TestRangeContains(t *testing.T) {
	r := ResolvePeriod(NewDate(2025, 6, 11), PeriodMonth)
	for _, d := range []Date{NewDate(2025, 6, 1), NewDate(2025, 6, 30), NewDate(2025, 6, 11)} {
		if !r.Contains(d) {
			t.Fatalf("%s should be inside range", d.Format("2006-01-02"))
		}
	}
	for _, d := range []Date{NewDate(2025, 5, 31), NewDate(2025, 7, 1)} {
		if r.Contains(d) {
			t.Fatalf("%s should be outside range", d.Format("2006-01-02"))
		}
	}
}
