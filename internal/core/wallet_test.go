package core

import "testing"

func walletTx(tag string, units int64, catType CategoryType) Transaction {
	t := tx(NewDate(2025, 6, 1), units, "c", catType)
	t.WalletTag = tag
	return t
}

func TestReconcileWallets(t *testing.T) {
	wallets := []Wallet{{ID: "w1", Name: "Cash", InitialBalance: 100_000}}
	txs := []Transaction{
		walletTx("CASH ", 20_000, Income), // matches despite case and padding
		walletTx("cash", 5_000, Expense),
		walletTx("bank", 999_999, Income), // different wallet, excluded
	}

	got := ReconcileWallets(wallets, txs, nil)
	if len(got) != 1 {
		t.Fatalf("balance count = %d, want 1", len(got))
	}
	if got[0].Balance != 115_000 {
		t.Fatalf("balance = %d, want 115000", got[0].Balance)
	}
}

func TestReconcileWalletsBlankTagMatchesNothing(t *testing.T) {
	wallets := []Wallet{{Name: "Cash", InitialBalance: 0}}
	txs := []Transaction{walletTx("", 10_000, Expense)}

	got := ReconcileWallets(wallets, txs, nil)
	if got[0].Balance != 0 {
		t.Fatalf("blank tag must not affect any wallet, balance = %d", got[0].Balance)
	}
	// The transaction still counts globally.
	if s := Summarize(txs); s.Expense.Units != 10_000 {
		t.Fatalf("global expense = %d, want 10000", s.Expense.Units)
	}
}

func TestReconcileWalletsNegativeInitialBalance(t *testing.T) {
	wallets := []Wallet{{Name: "Overdraft", InitialBalance: -50_000}}
	txs := []Transaction{walletTx("overdraft", 20_000, Income)}

	got := ReconcileWallets(wallets, txs, nil)
	if got[0].Balance != -30_000 {
		t.Fatalf("balance = %d, want -30000", got[0].Balance)
	}
}

func TestFoldMatcherIsExact(t *testing.T) {
	m := FoldMatcher{}
	if !m.Match(" Cash ", "cash") {
		t.Fatalf("trimmed case-folded equality must match")
	}
	if m.Match("cash wallet", "cash") {
		t.Fatalf("substring must not match")
	}
}

func TestNetWorth(t *testing.T) {
	balances := []WalletBalance{{Balance: 100}, {Balance: -30}, {Balance: 7}}
	if got := NetWorth(balances); got != 77 {
		t.Fatalf("net worth = %d, want 77", got)
	}
}
