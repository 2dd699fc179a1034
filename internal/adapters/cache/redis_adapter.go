package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/internal/domain/repositories"
	redisclient "github.com/wardfinder/backend/internal/infrastructure/clients/redis"
)

const (
	zeroResultKey   = "analytics:zero_result_queries"
	memberSeparator = "\x1f"
)

// RedisAnalyticsAdapter keeps zero-result search counts in a Redis sorted set
type RedisAnalyticsAdapter struct {
	client *redisclient.Client
}

// NewRedisAnalyticsAdapter creates a new Redis analytics adapter
func NewRedisAnalyticsAdapter(client *redisclient.Client) repositories.SearchAnalyticsRepository {
	return &RedisAnalyticsAdapter{
		client: client,
	}
}

// RecordZeroResult increments the counter for the event's hospital and query
func (a *RedisAnalyticsAdapter) RecordZeroResult(ctx context.Context, event *entities.SearchEvent) error {
	member := zeroResultMember(event.HospitalID, event.NormalizedQuery)
	if err := a.client.Client().ZIncrBy(ctx, zeroResultKey, 1, member).Err(); err != nil {
		return fmt.Errorf("failed to record zero-result query: %w", err)
	}
	return nil
}

// GetZeroResultQueries returns the most frequent zero-result queries first
func (a *RedisAnalyticsAdapter) GetZeroResultQueries(ctx context.Context, limit int) ([]entities.ZeroResultQuery, error) {
	if limit <= 0 {
		limit = 100
	}

	// A missing key reads as an empty range
	entries, err := a.client.Client().ZRevRangeWithScores(ctx, zeroResultKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read zero-result queries: %w", err)
	}

	queries := make([]entities.ZeroResultQuery, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		hospitalID, query := splitZeroResultMember(member)
		queries = append(queries, entities.ZeroResultQuery{
			HospitalID: hospitalID,
			Query:      query,
			Count:      int64(entry.Score),
		})
	}
	return queries, nil
}

func zeroResultMember(hospitalID, query string) string {
	return hospitalID + memberSeparator + query
}

func splitZeroResultMember(member string) (string, string) {
	hospitalID, query, found := strings.Cut(member, memberSeparator)
	if !found {
		return "", member
	}
	return hospitalID, query
}
