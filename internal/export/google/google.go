package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"dompet/internal/export"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client writes monthly reports to a Google spreadsheet. It is
// write-only, the sheet is a destination and never a source of truth.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	// Base name without year (e.g. "Report"); code prefixes the year.
	reportBase string
}

var _ export.ReportExporter = (*Client)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service account credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional: REPORT_SHEET_NAME (default "Report").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	reportBase := strings.TrimSpace(os.Getenv("REPORT_SHEET_NAME"))
	if reportBase == "" {
		reportBase = "Report"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		reportBase:    reportBase,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return service, nil
}

// ExportMonthlyReport overwrites the month's block in the report sheet.
// Each month owns a fixed column pair so repeated exports stay
// idempotent.
func (c *Client) ExportMonthlyReport(ctx context.Context, r export.MonthlyReport) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("invalid month: %d", r.Month)
	}

	sheetName := yearPrefixedName(c.reportBase, r.Year)

	rows := [][]any{
		{monthLabel(r.Month), ""},
		{"Income", minorToDisplay(r.Summary.Income.Units)},
		{"Expense", minorToDisplay(r.Summary.Expense.Units)},
		{"Balance", minorToDisplay(r.Summary.Balance)},
		{"", ""},
	}
	for _, ca := range r.ByCategory {
		rows = append(rows, []any{ca.Name, minorToDisplay(ca.Amount.Units)})
	}

	// Two columns per month, A/B for January, C/D for February, and so
	// on. Clear the whole block first so a shrinking breakdown cannot
	// leave stale rows behind.
	startCol := columnName((r.Month - 1) * 2)
	endCol := columnName((r.Month-1)*2 + 1)
	blockRange := fmt.Sprintf("%s!%s1:%s100", sheetName, startCol, endCol)

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, blockRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", blockRange, err)
	}

	writeRange := fmt.Sprintf("%s!%s1:%s%d", sheetName, startCol, endCol, len(rows))
	vr := &gsheet.ValueRange{Values: rows}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update %s: %w", writeRange, err)
	}

	slog.InfoContext(ctx, "Monthly report exported",
		"sheet", sheetName,
		"year", r.Year,
		"month", r.Month,
		"categories", len(r.ByCategory))

	return nil
}

func minorToDisplay(units int64) float64 {
	return float64(units) / 100.0
}

func monthLabel(month int) string {
	names := [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	return names[month-1]
}

// columnName converts a zero-based column index to its A1 letter.
func columnName(idx int) string {
	name := ""
	for {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
		if idx < 0 {
			return name
		}
	}
}

// yearPrefixedName returns "<year> <base>" unless base already starts
// with a 4-digit year.
func yearPrefixedName(base string, year int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return base
	}
	if len(base) >= 5 {
		if y, err := strconv.Atoi(base[0:4]); err == nil && base[4] == ' ' && y > 1900 && y < 3000 {
			return base
		}
	}
	return fmt.Sprintf("%d %s", year, base)
}
