package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dompet/internal/core"
)

func (s *Server) handleGetBudgets(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := s.svc.Budgets.Progress(r.Context(), s.owner, ref)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load budget progress", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBudgetProgressDTOs(progress))
}

func (s *Server) handlePutBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ref, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryID := sanitizeInput(req.CategoryID)
	if categoryID == "" {
		writeDomainError(w, core.ErrEmptyCategory)
		return
	}

	amount, err := core.ParseCap(req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.svc.Budgets.SetBudget(r.Context(), s.owner, categoryID, amount, ref); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
