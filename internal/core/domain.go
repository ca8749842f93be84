package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

type (
	CategoryType string

	// Date is a calendar date with no time component. The underlying
	// time.Time is always midnight UTC.
	Date struct {
		time.Time
	}

	Category struct {
		ID   string
		Name string
		// Type is fixed at creation; nothing mutates it afterwards.
		Type CategoryType
	}

	// Transaction is a single money movement. Amount is always
	// non-negative; whether it adds to or subtracts from a total is
	// derived from the category type via Signed.
	Transaction struct {
		ID          string
		Date        Date
		Amount      Money
		Category    Category
		Description string
		// WalletTag is the free-text payment-method label matched
		// against wallet names at reconciliation time.
		WalletTag string
	}

	// Budget is the single active spending cap for (Owner, CategoryID).
	Budget struct {
		ID           string
		Owner        string
		CategoryID   string
		CategoryName string
		Amount       Money
	}

	// Wallet is a cash/bank account. InitialBalance is an editable
	// anchor, not a ledger entry, and may be negative.
	Wallet struct {
		ID             string
		Name           string
		InitialBalance int64
	}

	// Subscription is a recurring bill due on DueDay of every month.
	// It has no durable link to the transactions that pay it; the
	// reconciler matches by name.
	Subscription struct {
		ID         string
		Name       string
		Amount     Money
		CategoryID string
		WalletTag  string
		DueDay     int
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDueDay    = errors.New("due day must be between 1 and 31")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyCategory    = errors.New("empty category")
	ErrZeroDate         = errors.New("date cannot be zero")
	ErrInvalidCategoryType = errors.New("category type must be income or expense")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// Day returns the day of the month (1-31).
func (d Date) Day() int { return d.Time.Day() }

// Month returns the month (1-12).
func (d Date) Month() int { return int(d.Time.Month()) }

// Year returns the year.
func (d Date) Year() int { return d.Time.Year() }

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

func (c CategoryType) Validate() error {
	switch c {
	case Income, Expense:
		return nil
	}
	return ErrInvalidCategoryType
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return c.Type.Validate()
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if t.Amount.Units < 0 {
		return ErrInvalidAmount
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

func (s Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.CategoryID) == "" {
		return ErrEmptyCategory
	}
	if s.DueDay < 1 || s.DueDay > 31 {
		return ErrInvalidDueDay
	}
	return nil
}
