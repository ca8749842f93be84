// Package services orchestrates the aggregation engine over the ledger
// ports, the message broker, and the report exporter.
package services

import (
	"context"
	"fmt"

	"dompet/internal/core"
	"dompet/internal/ledger"
)

// Report is the full periodic view: totals, category ranking, timeline
// buckets, and the advice verdict for the reference day.
type Report struct {
	Period     core.Range            `json:"period"`
	Summary    core.Summary          `json:"summary"`
	ByCategory []core.CategoryAmount `json:"by_category"`
	Timeline   core.Timeline         `json:"timeline"`
	Advice     core.Advice           `json:"advice"`
}

type ReportService struct {
	store  ledger.TransactionReader
	advice core.AdviceConfig
}

func NewReportService(store ledger.TransactionReader, advice core.AdviceConfig) *ReportService {
	return &ReportService{store: store, advice: advice}
}

// BuildReport aggregates one period around ref. The advice rules treat
// ref as today, so a report for a past period judges that period.
func (s *ReportService) BuildReport(ctx context.Context, ref core.Date, kind core.PeriodKind, g core.Granularity) (Report, error) {
	period := core.ResolvePeriod(ref, kind)

	transactions, err := s.store.ListRange(ctx, period)
	if err != nil {
		return Report{}, fmt.Errorf("list transactions: %w", err)
	}

	return Report{
		Period:     period,
		Summary:    core.Summarize(transactions),
		ByCategory: core.BreakdownByCategory(transactions),
		Timeline:   core.BucketTimeline(transactions, g),
		Advice:     core.Advise(transactions, ref, s.advice),
	}, nil
}
