package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dompet/internal/core"
)

func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.Categories.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list categories", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTOs(categories))
}

func (s *Server) handlePostCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := s.svc.Categories.Create(r.Context(), core.Category{
		Name: sanitizeInput(req.Name),
		Type: core.CategoryType(sanitizeInput(req.Type)),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryDTO{
		ID:   created.ID,
		Name: created.Name,
		Type: string(created.Type),
	})
}
