package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/jobtracker-backend/internal/domain"
)

type histogramRepo interface {
	CountByStatusSource(ctx context.Context) ([]domain.StatusSourceCount, error)
}

// Service computes aggregate statistics over all applications.
type Service struct {
	apps histogramRepo
	log  *slog.Logger
}

// NewService creates a new Analytics service.
func NewService(log *slog.Logger, apps histogramRepo) *Service {
	return &Service{
		apps: apps,
		log:  log.With("service", "analytics"),
	}
}

// Summary returns totals per status and per source, with every known value
// present, and the share of applications that reached interview or offer.
// All figures come from one histogram query, so they always add up to Total.
func (s *Service) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	cells, err := s.apps.CountByStatusSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	summary := &domain.AnalyticsSummary{
		ByStatus: make(map[domain.ApplicationStatus]int, len(domain.AllStatuses())),
		BySource: make(map[domain.Source]int, len(domain.AllSources())),
	}
	for _, st := range domain.AllStatuses() {
		summary.ByStatus[st] = 0
	}
	for _, src := range domain.AllSources() {
		summary.BySource[src] = 0
	}

	progressed := 0
	for _, c := range cells {
		summary.Total += c.Count
		summary.ByStatus[c.Status] += c.Count
		summary.BySource[c.Source] += c.Count
		if c.Status.IsProgressed() {
			progressed += c.Count
		}
	}

	summary.SuccessRate = successRate(progressed, summary.Total)

	s.log.DebugContext(ctx, "analytics summary computed",
		slog.Int("total", summary.Total),
		slog.Float64("success_rate", summary.SuccessRate),
	)

	return summary, nil
}

// successRate returns part/total as a percentage rounded half away from zero
// to two decimals. Zero total yields 0.
func successRate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
	f, _ := rate.Float64()
	return f
}
