// Package ledger defines the ports the engine needs from a record store.
// Implementations return transactions with the category already resolved
// (a denormalized join); the engine never joins on its own.
package ledger

import (
	"context"
	"errors"

	"dompet/internal/core"
)

var ErrNotFound = errors.New("record not found")

type (
	// TransactionReader is the query contract for range-filtered,
	// category-resolved transactions.
	TransactionReader interface {
		ListRange(ctx context.Context, r core.Range) ([]core.Transaction, error)
	}

	// TransactionWriter mutates the ledger. Replace is a full-record
	// swap; there is no partial patch. Insert must be idempotent on the
	// transaction ID so a retried write cannot double-post.
	TransactionWriter interface {
		Insert(ctx context.Context, t core.Transaction) error
		Replace(ctx context.Context, t core.Transaction) error
		Delete(ctx context.Context, id string) error
	}

	// BudgetStore keeps one active cap per (owner, category). Upsert
	// replaces on conflict, it never merges; the store enforces the
	// uniqueness the guard pre-checks.
	BudgetStore interface {
		ListBudgets(ctx context.Context, owner string) ([]core.Budget, error)
		UpsertBudget(ctx context.Context, owner, categoryID string, amount core.Money) error
	}

	WalletStore interface {
		ListWallets(ctx context.Context) ([]core.Wallet, error)
		SetInitialBalance(ctx context.Context, id string, balance int64) error
	}

	SubscriptionStore interface {
		ListSubscriptions(ctx context.Context) ([]core.Subscription, error)
		InsertSubscription(ctx context.Context, s core.Subscription) error
		DeleteSubscription(ctx context.Context, id string) error
	}

	CategoryStore interface {
		ListCategories(ctx context.Context) ([]core.Category, error)
		CreateCategory(ctx context.Context, c core.Category) error
	}

	// Store is the full contract a backend implements.
	Store interface {
		TransactionReader
		TransactionWriter
		BudgetStore
		WalletStore
		SubscriptionStore
		CategoryStore
	}
)
