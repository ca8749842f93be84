package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dompet/internal/core"
)

func (s *Server) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kind, err := parsePeriodParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := s.svc.Transactions.ListPeriod(r.Context(), ref, kind)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionDTOs(transactions))
}

func (s *Server) handlePostTransaction(w http.ResponseWriter, r *http.Request) {
	t, ok := s.decodeTransaction(w, r, "")
	if !ok {
		return
	}

	posted, err := s.svc.Transactions.Post(r.Context(), t)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.flushCaches()
	writeJSON(w, http.StatusCreated, toTransactionDTO(posted))
}

func (s *Server) handlePutTransaction(w http.ResponseWriter, r *http.Request) {
	t, ok := s.decodeTransaction(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	if err := s.svc.Transactions.Amend(r.Context(), t); err != nil {
		writeDomainError(w, err)
		return
	}

	s.flushCaches()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.svc.Transactions.Remove(r.Context(), id, core.DateOf(time.Now())); err != nil {
		writeDomainError(w, err)
		return
	}

	s.flushCaches()
	w.WriteHeader(http.StatusNoContent)
}

// decodeTransaction parses and validates a transaction body. A false
// return means the response is already written.
func (s *Server) decodeTransaction(w http.ResponseWriter, r *http.Request, id string) (core.Transaction, bool) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return core.Transaction{}, false
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q: want YYYY-MM-DD", req.Date))
		return core.Transaction{}, false
	}

	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return core.Transaction{}, false
	}

	categoryID := sanitizeInput(req.CategoryID)
	if categoryID == "" {
		writeDomainError(w, core.ErrEmptyCategory)
		return core.Transaction{}, false
	}

	return core.Transaction{
		ID:          id,
		Date:        core.DateOf(day),
		Amount:      amount,
		Category:    core.Category{ID: categoryID},
		Description: sanitizeInput(req.Description),
		WalletTag:   sanitizeInput(req.WalletTag),
	}, true
}
