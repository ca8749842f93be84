package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dompet/internal/core"
	"dompet/internal/ledger"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLiteRepository backs the ledger ports with a local SQLite file.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ledger.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListRange implements ledger.TransactionReader.
func (r *SQLiteRepository) ListRange(ctx context.Context, rng core.Range) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.date, t.amount_units, t.category_id, t.description, t.wallet_tag,
		       COALESCE(c.name, ''), COALESCE(c.type, 'expense')
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.date >= ? AND t.date <= ?
		ORDER BY t.date DESC, t.id ASC`,
		rng.Start.Format(dateLayout), rng.End.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			rawDate string
			catType string
		)
		if err := rows.Scan(&t.ID, &rawDate, &t.Amount.Units, &t.Category.ID,
			&t.Description, &t.WalletTag, &t.Category.Name, &catType); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		day, err := time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", rawDate, err)
		}
		t.Date = core.DateOf(day)
		t.Category.Type = core.CategoryType(catType)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Insert implements ledger.TransactionWriter. A retried insert with the
// same ID is a no-op.
func (r *SQLiteRepository) Insert(ctx context.Context, t core.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, date, amount_units, category_id, description, wallet_tag)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		t.ID, t.Date.Format(dateLayout), t.Amount.Units, t.Category.ID, t.Description, t.WalletTag)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"date", t.Date.Format(dateLayout),
		"amount_units", t.Amount.Units,
		"category_id", t.Category.ID)
	return nil
}

// Replace implements ledger.TransactionWriter with full-record swap
// semantics.
func (r *SQLiteRepository) Replace(ctx context.Context, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET date = ?, amount_units = ?, category_id = ?, description = ?, wallet_tag = ?
		WHERE id = ?`,
		t.Date.Format(dateLayout), t.Amount.Units, t.Category.ID, t.Description, t.WalletTag, t.ID)
	if err != nil {
		return fmt.Errorf("replace transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace transaction rows: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction replaced", "id", t.ID)
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context, owner string) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.owner, b.category_id, COALESCE(c.name, ''), b.amount_units
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.owner = ?
		ORDER BY b.category_id ASC`, owner)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var out []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.ID, &b.Owner, &b.CategoryID, &b.CategoryName, &b.Amount.Units); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return out, nil
}

// UpsertBudget replaces the cap for (owner, category). One row per pair,
// enforced by the schema.
func (r *SQLiteRepository) UpsertBudget(ctx context.Context, owner, categoryID string, amount core.Money) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (id, owner, category_id, amount_units)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, category_id) DO UPDATE SET amount_units = excluded.amount_units`,
		owner+":"+categoryID, owner, categoryID, amount.Units)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget saved",
		"owner", owner,
		"category_id", categoryID,
		"amount_units", amount.Units)
	return nil
}

func (r *SQLiteRepository) ListWallets(ctx context.Context) ([]core.Wallet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, initial_balance_units FROM wallets ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var out []core.Wallet
	for rows.Next() {
		var w core.Wallet
		if err := rows.Scan(&w.ID, &w.Name, &w.InitialBalance); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) SetInitialBalance(ctx context.Context, id string, balance int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE wallets SET initial_balance_units = ? WHERE id = ?`, balance, id)
	if err != nil {
		return fmt.Errorf("set wallet balance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set wallet balance rows: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}

	slog.InfoContext(ctx, "Wallet balance updated", "id", id, "balance_units", balance)
	return nil
}

func (r *SQLiteRepository) ListSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, amount_units, category_id, wallet_tag, due_day
		FROM subscriptions
		ORDER BY due_day ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []core.Subscription
	for rows.Next() {
		var s core.Subscription
		if err := rows.Scan(&s.ID, &s.Name, &s.Amount.Units, &s.CategoryID, &s.WalletTag, &s.DueDay); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) InsertSubscription(ctx context.Context, s core.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, amount_units, category_id, wallet_tag, due_day)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Amount.Units, s.CategoryID, s.WalletTag, s.DueDay)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}

	slog.InfoContext(ctx, "Subscription saved", "id", s.ID, "name", s.Name, "due_day", s.DueDay)
	return nil
}

func (r *SQLiteRepository) DeleteSubscription(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete subscription rows: %w", err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}

	slog.InfoContext(ctx, "Subscription deleted", "id", id)
	return nil
}

func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var (
			c       core.Category
			rawType string
		)
		if err := rows.Scan(&c.ID, &c.Name, &rawType); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = core.CategoryType(rawType)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, type) VALUES (?, ?, ?)`,
		c.ID, c.Name, string(c.Type))
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", c.ID, "name", c.Name, "type", c.Type)
	return nil
}

// SeedWallet inserts a wallet if it does not exist yet. Wallet creation
// is not a port, backends seed their own.
func (r *SQLiteRepository) SeedWallet(ctx context.Context, w core.Wallet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wallets (id, name, initial_balance_units)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		w.ID, w.Name, w.InitialBalance)
	if err != nil {
		return fmt.Errorf("seed wallet: %w", err)
	}
	return nil
}
