package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"dompet/internal/core"
	"dompet/internal/ledger"
)

// WalletService derives wallet balances from the full ledger. Balances
// are never stored, only the initial balance is.
type WalletService struct {
	wallets ledger.WalletStore
	ledger  ledger.TransactionReader
	matcher core.TagMatcher
}

func NewWalletService(wallets ledger.WalletStore, reader ledger.TransactionReader) *WalletService {
	return &WalletService{
		wallets: wallets,
		ledger:  reader,
		matcher: core.FoldMatcher{},
	}
}

// Balances reconciles every wallet against the whole ledger and returns
// the derived balances plus their sum.
func (s *WalletService) Balances(ctx context.Context) ([]core.WalletBalance, int64, error) {
	var (
		wallets      []core.Wallet
		transactions []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wallets, err = s.wallets.ListWallets(gctx)
		if err != nil {
			return fmt.Errorf("list wallets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.ledger.ListRange(gctx, core.AllTime())
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	balances := core.ReconcileWallets(wallets, transactions, s.matcher)
	return balances, core.NetWorth(balances), nil
}

// AdjustInitialBalance overwrites a wallet's starting point. Derived
// balances shift with it on the next reconciliation.
func (s *WalletService) AdjustInitialBalance(ctx context.Context, id string, balance int64) error {
	if id == "" {
		return ledger.ErrNotFound
	}
	if err := s.wallets.SetInitialBalance(ctx, id, balance); err != nil {
		return fmt.Errorf("set initial balance: %w", err)
	}

	slog.InfoContext(ctx, "Wallet initial balance adjusted", "id", id, "balance_units", balance)
	return nil
}
