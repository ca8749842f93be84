package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"dompet/internal/core"
	"dompet/internal/ledger"
)

// BudgetService enforces the income guard before a cap is stored and
// reports progress against the reference month.
type BudgetService struct {
	budgets ledger.BudgetStore
	ledger  ledger.TransactionReader
}

func NewBudgetService(budgets ledger.BudgetStore, reader ledger.TransactionReader) *BudgetService {
	return &BudgetService{budgets: budgets, ledger: reader}
}

// SetBudget stores a cap for (owner, category) unless the owner's caps
// would then exceed the month's income. Replaces any existing cap.
func (s *BudgetService) SetBudget(ctx context.Context, owner, categoryID string, amount core.Money, ref core.Date) error {
	if owner == "" {
		return fmt.Errorf("set budget: %w", core.ErrEmptyName)
	}
	if categoryID == "" {
		return fmt.Errorf("set budget: %w", core.ErrEmptyCategory)
	}
	if amount.Units < 0 {
		return fmt.Errorf("set budget: %w", core.ErrInvalidAmount)
	}

	existing, income, err := s.fetchMonth(ctx, owner, ref)
	if err != nil {
		return err
	}

	if err := core.CheckAllocation(existing, income, categoryID, amount); err != nil {
		return err
	}

	if err := s.budgets.UpsertBudget(ctx, owner, categoryID, amount); err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget cap stored",
		"owner", owner,
		"category_id", categoryID,
		"amount_units", amount.Units)
	return nil
}

// Progress reports how far each of the owner's caps is consumed within
// the reference month.
func (s *BudgetService) Progress(ctx context.Context, owner string, ref core.Date) ([]core.BudgetProgress, error) {
	period := core.ResolvePeriod(ref, core.PeriodMonth)

	var (
		budgets      []core.Budget
		transactions []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.ListBudgets(gctx, owner)
		if err != nil {
			return fmt.Errorf("list budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.ledger.ListRange(gctx, period)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return core.TrackProgress(budgets, transactions), nil
}

// fetchMonth loads the owner's caps and the month income concurrently.
func (s *BudgetService) fetchMonth(ctx context.Context, owner string, ref core.Date) ([]core.Budget, core.Money, error) {
	period := core.ResolvePeriod(ref, core.PeriodMonth)

	var (
		budgets []core.Budget
		income  core.Money
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.ListBudgets(gctx, owner)
		if err != nil {
			return fmt.Errorf("list budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		transactions, err := s.ledger.ListRange(gctx, period)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		income = core.Summarize(transactions).Income
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, core.Money{}, err
	}
	return budgets, income, nil
}
