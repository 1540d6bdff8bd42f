package rest

import (
	"net/http"

	"github.com/heartmarshall/jobtracker-backend/internal/transport/middleware"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Health       *HealthHandler
	Applications *ApplicationHandler
	Analytics    *AnalyticsHandler
	Extraction   *ExtractionHandler
	Profile      *ProfileHandler
	Settings     *SettingHandler
}

// NewRouter registers every route. parseURLLimit wraps the extraction
// endpoint only and may be nil.
func NewRouter(h Handlers, parseURLLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	parseURL := middleware.Chain(parseURLLimit)(http.HandlerFunc(h.Extraction.ParseURL))

	mux.HandleFunc("POST /api/applications", h.Applications.Create)
	mux.HandleFunc("GET /api/applications", h.Applications.List)
	mux.HandleFunc("GET /api/applications/recent", h.Applications.Recent)
	mux.HandleFunc("GET /api/applications/search", h.Applications.Search)
	mux.HandleFunc("GET /api/applications/company-info", h.Applications.CompanyInfo)
	mux.HandleFunc("GET /api/applications/analytics/summary", h.Analytics.Summary)
	mux.Handle("POST /api/applications/parse-url", parseURL)
	mux.HandleFunc("GET /api/applications/{id}", h.Applications.Get)
	mux.HandleFunc("PUT /api/applications/{id}", h.Applications.Update)
	mux.HandleFunc("DELETE /api/applications/{id}", h.Applications.Delete)
	mux.HandleFunc("GET /api/applications/{id}/resume", h.Applications.Resume)
	mux.HandleFunc("GET /api/applications/{id}/cover-letter", h.Applications.CoverLetter)
	mux.HandleFunc("GET /api/applications/{id}/history", h.Applications.History)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("POST /api/profile", h.Profile.Upsert)

	mux.HandleFunc("GET /api/settings", h.Settings.List)
	mux.HandleFunc("GET /api/settings/{key}", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings/{key}", h.Settings.Set)

	return mux
}
