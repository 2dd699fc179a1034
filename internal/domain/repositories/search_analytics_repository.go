package repositories

import (
	"context"

	"github.com/wardfinder/backend/internal/domain/entities"
)

// SearchAnalyticsRepository stores aggregated search analytics
type SearchAnalyticsRepository interface {
	// RecordZeroResult counts a search that matched nothing
	RecordZeroResult(ctx context.Context, event *entities.SearchEvent) error

	// GetZeroResultQueries returns the most frequent zero-result queries
	GetZeroResultQueries(ctx context.Context, limit int) ([]entities.ZeroResultQuery, error)
}
