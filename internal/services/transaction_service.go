package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dompet/internal/amqp"
	"dompet/internal/core"
	"dompet/internal/ledger"
)

// TransactionService writes ledger entries and notifies the sync worker.
// The write is the source of truth, the event is best-effort.
type TransactionService struct {
	reader     ledger.TransactionReader
	writer     ledger.TransactionWriter
	amqpClient *amqp.Client
}

func NewTransactionService(reader ledger.TransactionReader, writer ledger.TransactionWriter, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{reader: reader, writer: writer, amqpClient: amqpClient}
}

// Post inserts a transaction. A blank ID gets one; a retried post with
// the same ID is a no-op at the store.
func (s *TransactionService) Post(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if err := s.writer.Insert(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	s.publishEvent(ctx, t.ID, amqp.EventPosted, t.Date)
	return t, nil
}

// Amend swaps the stored record for the given one, whole-record.
func (s *TransactionService) Amend(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if err := s.writer.Replace(ctx, t); err != nil {
		if err == ledger.ErrNotFound {
			return err
		}
		return fmt.Errorf("replace transaction: %w", err)
	}

	s.publishEvent(ctx, t.ID, amqp.EventReplaced, t.Date)
	return nil
}

func (s *TransactionService) Remove(ctx context.Context, id string, date core.Date) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		if err == ledger.ErrNotFound {
			return err
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.publishEvent(ctx, id, amqp.EventDeleted, date)
	return nil
}

// ListPeriod returns the transactions of the period around ref.
func (s *TransactionService) ListPeriod(ctx context.Context, ref core.Date, kind core.PeriodKind) ([]core.Transaction, error) {
	period := core.ResolvePeriod(ref, kind)
	transactions, err := s.reader.ListRange(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionService) publishEvent(ctx context.Context, transactionID, kind string, date core.Date) {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping ledger event")
		return
	}
	msg := amqp.NewLedgerEventMessage(transactionID, kind, date.Format("2006-01-02"))
	if err := s.amqpClient.PublishLedgerEvent(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"transaction_id", transactionID, "kind", kind, "error", err)
	}
}
