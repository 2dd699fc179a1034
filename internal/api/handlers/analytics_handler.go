package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wardfinder/backend/internal/domain/entities"
)

const (
	defaultZeroResultLimit = 20
	maxZeroResultLimit     = 500
)

// ZeroResultReporter lists searches that matched nothing
type ZeroResultReporter interface {
	GetZeroResultQueries(ctx context.Context, limit int) ([]entities.ZeroResultQuery, error)
}

// AnalyticsHandler handles search analytics HTTP requests
type AnalyticsHandler struct {
	reporter ZeroResultReporter
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(reporter ZeroResultReporter) *AnalyticsHandler {
	return &AnalyticsHandler{reporter: reporter}
}

// GetZeroResultQueries handles GET /analytics/zero-result-queries?limit=
func (h *AnalyticsHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	limit := defaultZeroResultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxZeroResultLimit)
	}

	queries, err := h.reporter.GetZeroResultQueries(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, queries)
}
