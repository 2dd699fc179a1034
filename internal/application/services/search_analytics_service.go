package services

import (
	"context"
	"time"

	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/internal/domain/repositories"
	"github.com/wardfinder/backend/internal/infrastructure/observability"
)

const defaultAnalyticsTimeout = 250 * time.Millisecond

// SearchAnalyticsService records searches that matched nothing
type SearchAnalyticsService struct {
	repo    repositories.SearchAnalyticsRepository
	timeout time.Duration
}

// NewSearchAnalyticsService creates the service. Each write is bounded by timeout.
func NewSearchAnalyticsService(repo repositories.SearchAnalyticsRepository, timeout time.Duration) *SearchAnalyticsService {
	if timeout <= 0 {
		timeout = defaultAnalyticsTimeout
	}
	return &SearchAnalyticsService{repo: repo, timeout: timeout}
}

// TrackZeroResult stores the event. Failures are logged and never returned;
// analytics must not affect the search response.
func (s *SearchAnalyticsService) TrackZeroResult(ctx context.Context, event *entities.SearchEvent) {
	if s == nil || s.repo == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.repo.RecordZeroResult(writeCtx, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("hospital_id", event.HospitalID).
			Msg("failed to record zero-result search")
	}
}

// GetZeroResultQueries returns the most frequent zero-result queries. With no
// repository configured the list is empty.
func (s *SearchAnalyticsService) GetZeroResultQueries(ctx context.Context, limit int) ([]entities.ZeroResultQuery, error) {
	if s == nil || s.repo == nil {
		return []entities.ZeroResultQuery{}, nil
	}
	return s.repo.GetZeroResultQueries(ctx, limit)
}
