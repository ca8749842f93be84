// Package memory is the in-memory ledger backend: the default when no
// database is configured, and the test double for the service layer.
package memory

import (
	"context"
	"sort"
	"sync"

	"dompet/internal/core"
	"dompet/internal/ledger"
)

type record struct {
	tx         core.Transaction
	categoryID string
}

// Store keeps everything in maps guarded by one RWMutex. Reads return
// copies; nothing escapes with a live reference into the store.
type Store struct {
	mu            sync.RWMutex
	transactions  map[string]record
	categories    map[string]core.Category
	budgets       map[string]core.Budget // keyed owner + "\x00" + categoryID
	wallets       map[string]core.Wallet
	subscriptions map[string]core.Subscription
}

var _ ledger.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		transactions:  make(map[string]record),
		categories:    make(map[string]core.Category),
		budgets:       make(map[string]core.Budget),
		wallets:       make(map[string]core.Wallet),
		subscriptions: make(map[string]core.Subscription),
	}
}

func (s *Store) ListRange(ctx context.Context, r core.Range) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Transaction
	for _, rec := range s.transactions {
		if !r.Contains(rec.tx.Date) {
			continue
		}
		out = append(out, s.resolved(rec))
	}
	// Newest first, then by ID so the order is stable.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// resolved denormalizes the category onto the transaction. A dangling
// category reference degrades to an unnamed expense rather than failing.
func (s *Store) resolved(rec record) core.Transaction {
	t := rec.tx
	if cat, ok := s.categories[rec.categoryID]; ok {
		t.Category = cat
	} else {
		t.Category = core.Category{ID: rec.categoryID, Type: core.Expense}
	}
	return t
}

func (s *Store) Insert(ctx context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transactions[t.ID]; exists {
		return nil // idempotent on ID
	}
	s.transactions[t.ID] = record{tx: t, categoryID: t.Category.ID}
	return nil
}

func (s *Store) Replace(ctx context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transactions[t.ID]; !exists {
		return ledger.ErrNotFound
	}
	s.transactions[t.ID] = record{tx: t, categoryID: t.Category.ID}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transactions[id]; !exists {
		return ledger.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func budgetKey(owner, categoryID string) string {
	return owner + "\x00" + categoryID
}

func (s *Store) ListBudgets(ctx context.Context, owner string) ([]core.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Budget
	for _, b := range s.budgets {
		if b.Owner != owner {
			continue
		}
		if cat, ok := s.categories[b.CategoryID]; ok {
			b.CategoryName = cat.Name
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (s *Store) UpsertBudget(ctx context.Context, owner, categoryID string, amount core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := budgetKey(owner, categoryID)
	b, ok := s.budgets[key]
	if !ok {
		b = core.Budget{ID: key, Owner: owner, CategoryID: categoryID}
	}
	b.Amount = amount // replace, never add
	s.budgets[key] = b
	return nil
}

func (s *Store) ListWallets(ctx context.Context) ([]core.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) SetInitialBalance(ctx context.Context, id string, balance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[id]
	if !ok {
		return ledger.ErrNotFound
	}
	w.InitialBalance = balance
	s.wallets[id] = w
	return nil
}

func (s *Store) ListSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDay != out[j].DueDay {
			return out[i].DueDay < out[j].DueDay
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) InsertSubscription(ctx context.Context, sub core.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[sub.ID] = sub
	return nil
}

func (s *Store) DeleteSubscription(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.subscriptions[id]; !exists {
		return ledger.ErrNotFound
	}
	delete(s.subscriptions, id)
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]core.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateCategory(ctx context.Context, c core.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
	return nil
}

// SeedWallet adds a wallet directly; fixtures and the default backend use
// it, the ports do not expose wallet creation.
func (s *Store) SeedWallet(w core.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[w.ID] = w
}
