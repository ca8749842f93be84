// Package export defines the outbound reporting contract. The engine
// pushes finished monthly reports out, it never reads them back.
package export

import (
	"context"

	"dompet/internal/core"
)

// MonthlyReport is the flattened report a destination receives.
type MonthlyReport struct {
	Year       int
	Month      int
	Summary    core.Summary
	ByCategory []core.CategoryAmount
}

type ReportExporter interface {
	ExportMonthlyReport(ctx context.Context, r MonthlyReport) error
}
