package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func (s *Server) handleGetWallets(w http.ResponseWriter, r *http.Request) {
	balances, netWorth, err := s.svc.Wallets.Balances(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to reconcile wallets", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWalletsResponse(balances, netWorth))
}

func (s *Server) handlePutWalletBalance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req walletBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.svc.Wallets.AdjustInitialBalance(r.Context(), id, req.InitialBalanceUnits); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
