package google

import "testing"

func TestYearPrefixedName(t *testing.T) {
	tests := []struct {
		name string
		base string
		year int
		want string
	}{
		{"plain base", "Report", 2025, "2025 Report"},
		{"already prefixed", "2024 Report", 2025, "2024 Report"},
		{"empty base", "", 2025, ""},
		{"spaces trimmed", "  Report  ", 2025, "2025 Report"},
		{"short base", "R", 2025, "2025 R"},
		{"numeric but not a year", "1234", 2025, "2025 1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yearPrefixedName(tt.base, tt.year); got != tt.want {
				t.Errorf("yearPrefixedName(%q, %d) = %q, want %q", tt.base, tt.year, got, tt.want)
			}
		})
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{22, "W"},  // December's first column
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
	}
	for _, tt := range tests {
		if got := columnName(tt.idx); got != tt.want {
			t.Errorf("columnName(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestMinorToDisplay(t *testing.T) {
	if got := minorToDisplay(12345); got != 123.45 {
		t.Errorf("minorToDisplay(12345) = %v, want 123.45", got)
	}
	if got := minorToDisplay(-50); got != -0.5 {
		t.Errorf("minorToDisplay(-50) = %v, want -0.5", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel(1); got != "January" {
		t.Errorf("monthLabel(1) = %q", got)
	}
	if got := monthLabel(12); got != "December" {
		t.Errorf("monthLabel(12) = %q", got)
	}
}
