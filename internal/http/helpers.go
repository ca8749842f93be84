package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dompet/internal/core"
)

// parseDateParam reads the "date" query parameter (YYYY-MM-DD),
// defaulting to today.
func parseDateParam(r *http.Request) (core.Date, error) {
	v := strings.TrimSpace(r.URL.Query().Get("date"))
	if v == "" {
		return core.DateOf(time.Now()), nil
	}
	parsed, err := time.Parse("2006-01-02", v)
	if err != nil {
		return core.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", v)
	}
	return core.DateOf(parsed), nil
}

// parsePeriodParam reads the "period" query parameter, defaulting to
// month.
func parsePeriodParam(r *http.Request) (core.PeriodKind, error) {
	v := strings.TrimSpace(r.URL.Query().Get("period"))
	switch v {
	case "":
		return core.PeriodMonth, nil
	case string(core.PeriodWeek), string(core.PeriodMonth), string(core.PeriodYear):
		return core.PeriodKind(v), nil
	}
	return "", fmt.Errorf("invalid period %q: want week, month, or year", v)
}

// parseGranularityParam reads the "granularity" query parameter,
// defaulting to day.
func parseGranularityParam(r *http.Request) (core.Granularity, error) {
	v := strings.TrimSpace(r.URL.Query().Get("granularity"))
	switch v {
	case "":
		return core.GranularityDay, nil
	case string(core.GranularityDay), string(core.GranularityWeek), string(core.GranularityMonth):
		return core.Granularity(v), nil
	}
	return "", fmt.Errorf("invalid granularity %q: want day, week, or month", v)
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
