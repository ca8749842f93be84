package http

import (
	"dompet/internal/core"
	"dompet/internal/services"
)

// Wire types. Amounts travel as integer minor units; the "Units" suffix
// keeps that explicit on the wire.

type (
	summaryDTO struct {
		IncomeUnits  int64 `json:"income_units"`
		ExpenseUnits int64 `json:"expense_units"`
		BalanceUnits int64 `json:"balance_units"`
	}

	categoryAmountDTO struct {
		Name        string `json:"name"`
		AmountUnits int64  `json:"amount_units"`
	}

	bucketDTO struct {
		Key        string              `json:"key"`
		TotalUnits int64               `json:"total_units"`
		ByCategory []categoryAmountDTO `json:"by_category"`
	}

	timelineDTO struct {
		Buckets      []bucketDTO `json:"buckets"`
		AverageUnits int64       `json:"average_units"`
		MaxUnits     int64       `json:"max_units"`
		MaxKey       string      `json:"max_key"`
	}

	adviceDTO struct {
		Title    string `json:"title"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
	}

	reportResponse struct {
		PeriodStart string              `json:"period_start"`
		PeriodEnd   string              `json:"period_end"`
		Summary     summaryDTO          `json:"summary"`
		ByCategory  []categoryAmountDTO `json:"by_category"`
		Timeline    timelineDTO         `json:"timeline"`
		Advice      adviceDTO           `json:"advice"`
	}

	budgetProgressDTO struct {
		CategoryID   string  `json:"category_id"`
		CategoryName string  `json:"category_name"`
		CapUnits     int64   `json:"cap_units"`
		SpentUnits   int64   `json:"spent_units"`
		Percentage   float64 `json:"percentage"`
		Status       string  `json:"status"`
	}

	walletBalanceDTO struct {
		ID                  string `json:"id"`
		Name                string `json:"name"`
		InitialBalanceUnits int64  `json:"initial_balance_units"`
		BalanceUnits        int64  `json:"balance_units"`
	}

	walletsResponse struct {
		Wallets       []walletBalanceDTO `json:"wallets"`
		NetWorthUnits int64              `json:"net_worth_units"`
	}

	subscriptionStatusDTO struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		AmountUnits int64  `json:"amount_units"`
		CategoryID  string `json:"category_id"`
		WalletTag   string `json:"wallet_tag"`
		DueDay      int    `json:"due_day"`
		Paid        bool   `json:"paid"`
		State       string `json:"state"`
		DaysDelta   int    `json:"days_delta"`
		Label       string `json:"label"`
	}

	subscriptionsResponse struct {
		Subscriptions  []subscriptionStatusDTO `json:"subscriptions"`
		TotalUnits     int64                   `json:"total_units"`
		PaidUnits      int64                   `json:"paid_units"`
		RemainingUnits int64                   `json:"remaining_units"`
	}

	categoryDTO struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	}

	transactionDTO struct {
		ID           string `json:"id"`
		Date         string `json:"date"`
		AmountUnits  int64  `json:"amount_units"`
		CategoryID   string `json:"category_id"`
		CategoryName string `json:"category_name,omitempty"`
		CategoryType string `json:"category_type,omitempty"`
		Description  string `json:"description"`
		WalletTag    string `json:"wallet_tag"`
	}
)

// Request bodies. Amounts arrive as decimal strings and go through
// core.ParseAmount (budget caps through core.ParseCap), never through
// float64.

type (
	transactionRequest struct {
		Date        string `json:"date"`
		Amount      string `json:"amount"`
		CategoryID  string `json:"category_id"`
		Description string `json:"description"`
		WalletTag   string `json:"wallet_tag"`
	}

	budgetRequest struct {
		CategoryID string `json:"category_id"`
		Amount     string `json:"amount"`
	}

	walletBalanceRequest struct {
		InitialBalanceUnits int64 `json:"initial_balance_units"`
	}

	subscriptionRequest struct {
		Name       string `json:"name"`
		Amount     string `json:"amount"`
		CategoryID string `json:"category_id"`
		WalletTag  string `json:"wallet_tag"`
		DueDay     int    `json:"due_day"`
	}

	categoryRequest struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
)

const dateLayout = "2006-01-02"

func toSummaryDTO(s core.Summary) summaryDTO {
	return summaryDTO{
		IncomeUnits:  s.Income.Units,
		ExpenseUnits: s.Expense.Units,
		BalanceUnits: s.Balance,
	}
}

func toCategoryAmountDTOs(in []core.CategoryAmount) []categoryAmountDTO {
	out := make([]categoryAmountDTO, len(in))
	for i, ca := range in {
		out[i] = categoryAmountDTO{Name: ca.Name, AmountUnits: ca.Amount.Units}
	}
	return out
}

func toTimelineDTO(t core.Timeline) timelineDTO {
	buckets := make([]bucketDTO, len(t.Buckets))
	for i, b := range t.Buckets {
		buckets[i] = bucketDTO{
			Key:        b.Key,
			TotalUnits: b.Total.Units,
			ByCategory: toCategoryAmountDTOs(b.ByCategory),
		}
	}
	return timelineDTO{
		Buckets:      buckets,
		AverageUnits: t.Stats.Average,
		MaxUnits:     t.Stats.Max.Units,
		MaxKey:       t.Stats.MaxKey,
	}
}

func toReportResponse(r services.Report) reportResponse {
	return reportResponse{
		PeriodStart: r.Period.Start.Format(dateLayout),
		PeriodEnd:   r.Period.End.Format(dateLayout),
		Summary:     toSummaryDTO(r.Summary),
		ByCategory:  toCategoryAmountDTOs(r.ByCategory),
		Timeline:    toTimelineDTO(r.Timeline),
		Advice: adviceDTO{
			Title:    r.Advice.Title,
			Message:  r.Advice.Message,
			Severity: string(r.Advice.Severity),
		},
	}
}

func toBudgetProgressDTOs(in []core.BudgetProgress) []budgetProgressDTO {
	out := make([]budgetProgressDTO, len(in))
	for i, p := range in {
		out[i] = budgetProgressDTO{
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			CapUnits:     p.Cap.Units,
			SpentUnits:   p.Spent.Units,
			Percentage:   p.Percentage,
			Status:       string(p.Status),
		}
	}
	return out
}

func toWalletsResponse(balances []core.WalletBalance, netWorth int64) walletsResponse {
	wallets := make([]walletBalanceDTO, len(balances))
	for i, b := range balances {
		wallets[i] = walletBalanceDTO{
			ID:                  b.Wallet.ID,
			Name:                b.Wallet.Name,
			InitialBalanceUnits: b.Wallet.InitialBalance,
			BalanceUnits:        b.Balance,
		}
	}
	return walletsResponse{Wallets: wallets, NetWorthUnits: netWorth}
}

func toSubscriptionsResponse(statuses []core.SubscriptionStatus, billing core.BillingSummary) subscriptionsResponse {
	subs := make([]subscriptionStatusDTO, len(statuses))
	for i, st := range statuses {
		subs[i] = subscriptionStatusDTO{
			ID:          st.Subscription.ID,
			Name:        st.Subscription.Name,
			AmountUnits: st.Subscription.Amount.Units,
			CategoryID:  st.Subscription.CategoryID,
			WalletTag:   st.Subscription.WalletTag,
			DueDay:      st.Subscription.DueDay,
			Paid:        st.Paid,
			State:       string(st.State),
			DaysDelta:   st.DaysDelta,
			Label:       st.Label,
		}
	}
	return subscriptionsResponse{
		Subscriptions:  subs,
		TotalUnits:     billing.Total.Units,
		PaidUnits:      billing.Paid.Units,
		RemainingUnits: billing.Remaining.Units,
	}
}

func toCategoryDTOs(in []core.Category) []categoryDTO {
	out := make([]categoryDTO, len(in))
	for i, c := range in {
		out[i] = categoryDTO{ID: c.ID, Name: c.Name, Type: string(c.Type)}
	}
	return out
}

func toTransactionDTO(t core.Transaction) transactionDTO {
	return transactionDTO{
		ID:           t.ID,
		Date:         t.Date.Format(dateLayout),
		AmountUnits:  t.Amount.Units,
		CategoryID:   t.Category.ID,
		CategoryName: t.Category.Name,
		CategoryType: string(t.Category.Type),
		Description:  t.Description,
		WalletTag:    t.WalletTag,
	}
}

func toTransactionDTOs(in []core.Transaction) []transactionDTO {
	out := make([]transactionDTO, len(in))
	for i, t := range in {
		out[i] = toTransactionDTO(t)
	}
	return out
}
