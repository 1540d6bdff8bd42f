package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/postgres/setting"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/provider/jobpage"
	"github.com/heartmarshall/jobtracker-backend/internal/adapter/storage/local"
	"github.com/heartmarshall/jobtracker-backend/internal/config"
	analyticssvc "github.com/heartmarshall/jobtracker-backend/internal/service/analytics"
	applicationsvc "github.com/heartmarshall/jobtracker-backend/internal/service/application"
	extractionsvc "github.com/heartmarshall/jobtracker-backend/internal/service/extraction"
	profilesvc "github.com/heartmarshall/jobtracker-backend/internal/service/profile"
	settingsvc "github.com/heartmarshall/jobtracker-backend/internal/service/setting"
	"github.com/heartmarshall/jobtracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/jobtracker-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// NewHandler assembles repositories, services and transport into the root
// HTTP handler. The returned stop func releases background resources.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, store *local.Store) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	appRepo := application.New(pool)
	auditRepo := audit.New(pool)
	profileRepo := profile.New(pool)
	settingRepo := setting.New(pool)

	// External providers.
	llm := claude.NewClient(cfg.Extraction, logger)
	pages := jobpage.NewFetcher(cfg.Extraction, logger)

	// Services.
	appService := applicationsvc.NewService(logger, appRepo, store, auditRepo, txm, cfg.Storage.DeleteFilesOnRemove)
	analyticsService := analyticssvc.NewService(logger, appRepo)
	extractionService := extractionsvc.NewService(logger, settingRepo, llm, pages, cfg.Extraction)
	profileService := profilesvc.NewService(logger, profileRepo, auditRepo, txm)
	settingService := settingsvc.NewService(logger, settingRepo)

	// Transport.
	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(pool, store, BuildVersion()),
		Applications: rest.NewApplicationHandler(appService, cfg.Storage.MaxUploadBytes, logger),
		Analytics:    rest.NewAnalyticsHandler(analyticsService, logger),
		Extraction:   rest.NewExtractionHandler(extractionService, logger),
		Profile:      rest.NewProfileHandler(profileService, logger),
		Settings:     rest.NewSettingHandler(settingService, logger),
	}

	stop := func() {}
	var parseURLLimit middleware.Middleware // nil when disabled
	if cfg.Extraction.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
		parseURLLimit = limiter.Limit(cfg.Extraction.RateLimitPerMinute)
		stop = limiter.Stop
	}

	mux := rest.NewRouter(handlers, parseURLLimit)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxyHeaders),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, stop
}
