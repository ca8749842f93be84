package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dompet/internal/amqp"
	"dompet/internal/core"
	"dompet/internal/ledger"
)

// ErrAlreadyPaid rejects a second payment for a subscription within the
// same month.
var ErrAlreadyPaid = errors.New("subscription already paid this month")

// SubscriptionService reconciles recurring bills against the current
// month's ledger and posts payment transactions.
type SubscriptionService struct {
	subs       ledger.SubscriptionStore
	ledger     ledger.TransactionReader
	writer     ledger.TransactionWriter
	amqpClient *amqp.Client
	matcher    core.TagMatcher
}

func NewSubscriptionService(subs ledger.SubscriptionStore, reader ledger.TransactionReader, writer ledger.TransactionWriter, amqpClient *amqp.Client) *SubscriptionService {
	return &SubscriptionService{
		subs:       subs,
		ledger:     reader,
		writer:     writer,
		amqpClient: amqpClient,
		matcher:    core.FoldMatcher{},
	}
}

// Statuses reconciles every subscription against today's month.
func (s *SubscriptionService) Statuses(ctx context.Context, today core.Date) ([]core.SubscriptionStatus, core.BillingSummary, error) {
	subs, transactions, err := s.fetchMonth(ctx, today)
	if err != nil {
		return nil, core.BillingSummary{}, err
	}

	statuses, billing := core.ReconcileSubscriptions(subs, transactions, today, s.matcher)
	return statuses, billing, nil
}

// PayNow posts the payment transaction for one subscription. A second
// call within the month returns ErrAlreadyPaid; a retried insert with
// the same draft cannot double-post because the writer is idempotent on
// the transaction ID.
func (s *SubscriptionService) PayNow(ctx context.Context, id string, today core.Date) (core.Transaction, error) {
	subs, transactions, err := s.fetchMonth(ctx, today)
	if err != nil {
		return core.Transaction{}, err
	}

	var sub core.Subscription
	found := false
	for _, candidate := range subs {
		if candidate.ID == id {
			sub = candidate
			found = true
			break
		}
	}
	if !found {
		return core.Transaction{}, ledger.ErrNotFound
	}

	statuses, _ := core.ReconcileSubscriptions([]core.Subscription{sub}, transactions, today, s.matcher)
	if len(statuses) > 0 && statuses[0].Paid {
		return core.Transaction{}, ErrAlreadyPaid
	}

	draft := core.PaymentDraft(sub, today)
	draft.ID = uuid.NewString()

	if err := s.writer.Insert(ctx, draft); err != nil {
		return core.Transaction{}, fmt.Errorf("post payment: %w", err)
	}

	s.publishEvent(ctx, draft.ID, amqp.EventPosted, draft.Date)

	slog.InfoContext(ctx, "Subscription paid",
		"subscription_id", sub.ID,
		"transaction_id", draft.ID,
		"amount_units", draft.Amount.Units)
	return draft, nil
}

// AddSubscription registers a recurring bill. A blank ID gets one.
func (s *SubscriptionService) AddSubscription(ctx context.Context, sub core.Subscription) (core.Subscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if err := sub.Validate(); err != nil {
		return core.Subscription{}, err
	}
	if err := s.subs.InsertSubscription(ctx, sub); err != nil {
		return core.Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionService) RemoveSubscription(ctx context.Context, id string) error {
	if err := s.subs.DeleteSubscription(ctx, id); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (s *SubscriptionService) fetchMonth(ctx context.Context, today core.Date) ([]core.Subscription, []core.Transaction, error) {
	period := core.ResolvePeriod(today, core.PeriodMonth)

	var (
		subs         []core.Subscription
		transactions []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subs, err = s.subs.ListSubscriptions(gctx)
		if err != nil {
			return fmt.Errorf("list subscriptions: %w", err)
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
		return nil, nil, err
	}
	return subs, transactions, nil
}

func (s *SubscriptionService) publishEvent(ctx context.Context, transactionID, kind string, date core.Date) {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping ledger event")
		return
	}
	msg := amqp.NewLedgerEventMessage(transactionID, kind, date.Format("2006-01-02"))
	if err := s.amqpClient.PublishLedgerEvent(ctx, msg); err != nil {
		// The write already landed, the event is best-effort.
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"transaction_id", transactionID, "kind", kind, "error", err)
	}
}
