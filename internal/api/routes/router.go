package routes

import (
	"net/http"

	"github.com/wardfinder/backend/internal/api/handlers"
	"github.com/wardfinder/backend/internal/api/middleware"
	"github.com/wardfinder/backend/internal/infrastructure/observability"
)

// routePrefixes mounts every endpoint at the root and again under /api
var routePrefixes = []string{"", "/api"}

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	wardHandler      *handlers.WardSearchHandler
	analyticsHandler *handlers.AnalyticsHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	wardHandler *handlers.WardSearchHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		wardHandler:      wardHandler,
		analyticsHandler: analyticsHandler,
		allowedOrigins:   allowedOrigins,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	for _, prefix := range routePrefixes {
		r.mux.HandleFunc("GET "+prefix+"/health", r.wardHandler.Health)

		// Hospital endpoints
		r.mux.HandleFunc("GET "+prefix+"/hospitals", r.wardHandler.ListHospitals)
		r.mux.HandleFunc("GET "+prefix+"/hospitals/{id}", r.wardHandler.GetHospital)

		// Search endpoint
		r.mux.HandleFunc("GET "+prefix+"/search", r.wardHandler.Search)

		// Analytics endpoints
		if r.analyticsHandler != nil {
			r.mux.HandleFunc("GET "+prefix+"/analytics/zero-result-queries", r.analyticsHandler.GetZeroResultQueries)
		}
	}

	r.mux.HandleFunc("/", handlers.NotFound)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.mux, r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.NewCORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
