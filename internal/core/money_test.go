package core

import "testing"

// tx is the shared fixture builder for the aggregation tests.
func tx(date Date, units int64, catName string, catType CategoryType) Transaction {
	return Transaction{
		Date:   date,
		Amount: Money{Units: units},
		Category: Category{
			ID:   catName,
			Name: catName,
			Type: catType,
		},
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		units int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // half-up on the third decimal
		{"12.344", 1234, true},
		{"50000", 5000000, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseAmount(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseAmount(%q) expected error, got %d", tc.in, m.Units)
		}
		if tc.ok && m.Units != tc.units {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, m.Units, tc.units)
		}
	}
}

func TestParseCap(t *testing.T) {
	cases := []struct {
		in    string
		units int64
		ok    bool
	}{
		{"500.00", 50000, true},
		{"0", 0, true}, // zero cap: tracked but nothing allocated
		{"0.00", 0, true},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseCap(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseCap(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseCap(%q) expected error, got %d", tc.in, m.Units)
		}
		if tc.ok && m.Units != tc.units {
			t.Fatalf("ParseCap(%q) = %d, want %d", tc.in, m.Units, tc.units)
		}
	}
}

func TestSignedDerivesFromCategoryType(t *testing.T) {
	d := NewDate(2025, 6, 1)
	if got := Signed(tx(d, 500, "Salary", Income)); got != 500 {
		t.Fatalf("income signed = %d, want 500", got)
	}
	if got := Signed(tx(d, 500, "Food", Expense)); got != -500 {
		t.Fatalf("expense signed = %d, want -500", got)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Units: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Units: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}
