package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dompet/internal/core"
)

func (s *Server) handleGetSubscriptions(w http.ResponseWriter, r *http.Request) {
	today, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	statuses, billing, err := s.svc.Subscriptions.Statuses(r.Context(), today)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to reconcile subscriptions", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionsResponse(statuses, billing))
}

func (s *Server) handlePostSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sub, err := s.svc.Subscriptions.AddSubscription(r.Context(), core.Subscription{
		Name:       sanitizeInput(req.Name),
		Amount:     amount,
		CategoryID: sanitizeInput(req.CategoryID),
		WalletTag:  sanitizeInput(req.WalletTag),
		DueDay:     req.DueDay,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": sub.ID})
}

func (s *Server) handleDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Subscriptions.RemoveSubscription(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePaySubscription(w http.ResponseWriter, r *http.Request) {
	today, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	paid, err := s.svc.Subscriptions.PayNow(r.Context(), r.PathValue("id"), today)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.flushCaches()
	writeJSON(w, http.StatusCreated, toTransactionDTO(paid))
}
