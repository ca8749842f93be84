package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"dompet/internal/core"
)

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
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
	granularity, err := parseGranularityParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := fmt.Sprintf("%s|%s|%s", ref.Format(dateLayout), kind, granularity)
	if cached, ok := s.reportCache.Get(key); ok {
		w.Header().Set("X-Cache", "hit")
		writeJSON(w, http.StatusOK, cached)
		return
	}

	report, err := s.svc.Reports.BuildReport(r.Context(), ref, kind, granularity)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build report", "error", err)
		writeDomainError(w, err)
		return
	}

	resp := toReportResponse(report)
	s.reportCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAdvice(w http.ResponseWriter, r *http.Request) {
	ref, err := parseDateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Advice always judges the month around the reference day.
	report, err := s.svc.Reports.BuildReport(r.Context(), ref, core.PeriodMonth, core.GranularityDay)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build advice", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, adviceDTO{
		Title:    report.Advice.Title,
		Message:  report.Advice.Message,
		Severity: string(report.Advice.Severity),
	})
}
