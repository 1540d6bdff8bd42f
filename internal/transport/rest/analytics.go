package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type analyticsService interface {
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)
}

// AnalyticsHandler serves aggregate statistics.
type AnalyticsHandler struct {
	analytics analyticsService
	log       *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(analytics analyticsService, log *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, log: log}
}

// Summary handles GET /api/applications/analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.analytics.Summary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}
