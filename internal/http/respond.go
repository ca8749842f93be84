package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dompet/internal/core"
	"dompet/internal/ledger"
	"dompet/internal/services"
)

type errorResponse struct {
	Error string `json:"error"`
	// RemainingUnits is set only on budget guard rejections, so the
	// client can offer the allocatable amount.
	RemainingUnits *int64 `json:"remaining_units,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps the engine's sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	var exceeds *core.BudgetExceedsIncomeError
	switch {
	case errors.As(err, &exceeds):
		remaining := exceeds.Remaining
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:          err.Error(),
			RemainingUnits: &remaining,
		})
	case errors.Is(err, services.ErrAlreadyPaid):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDueDay),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, core.ErrZeroDate),
		errors.Is(err, core.ErrInvalidCategoryType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
