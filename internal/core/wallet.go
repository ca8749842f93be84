package core

import "strings"

// TagMatcher decides whether a transaction's wallet tag refers to a wallet
// name. It exists so the matching rule is swappable and testable on its own;
// reconciliation never hardcodes the comparison.
type TagMatcher interface {
	Match(tag, walletName string) bool
}

// FoldMatcher is the legacy rule: lowercase, trim, exact equality. No
// substring or fuzzy matching.
type FoldMatcher struct{}

func (FoldMatcher) Match(tag, walletName string) bool {
	return normalizeTag(tag) == normalizeTag(walletName)
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// WalletBalance is a wallet with its derived running balance. The balance is
// never stored anywhere; it is recomputed on every read from the initial
// balance plus matched transactions.
type WalletBalance struct {
	Wallet  Wallet
	Balance int64
}

// ReconcileWallets rebuilds each wallet's balance from its initial balance
// and the signed amounts of its matched transactions. A transaction whose
// tag matches no wallet (or is blank) contributes to no wallet here while
// still counting in global summaries.
func ReconcileWallets(wallets []Wallet, transactions []Transaction, matcher TagMatcher) []WalletBalance {
	if matcher == nil {
		matcher = FoldMatcher{}
	}
	out := make([]WalletBalance, 0, len(wallets))
	for _, w := range wallets {
		balance := w.InitialBalance
		for _, t := range transactions {
			if matcher.Match(t.WalletTag, w.Name) {
				balance += Signed(t)
			}
		}
		out = append(out, WalletBalance{Wallet: w, Balance: balance})
	}
	return out
}

// NetWorth sums every reconciled wallet balance.
func NetWorth(balances []WalletBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Balance
	}
	return total
}
