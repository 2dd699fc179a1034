package handlers

import (
	"context"
	"net/http"

	"github.com/wardfinder/backend/internal/domain/entities"
)

// WardSearcher is the query service behind the ward search endpoints
type WardSearcher interface {
	Search(ctx context.Context, hospitalID, query string) ([]entities.LocationRecord, error)
	Inspect(ctx context.Context, hospitalID string) (*entities.HospitalSummary, error)
	Hospitals() []entities.Hospital
	Health() entities.HealthReport
}

// WardSearchHandler handles hospital and ward search HTTP requests
type WardSearchHandler struct {
	service WardSearcher
}

// NewWardSearchHandler creates a new ward search handler
func NewWardSearchHandler(service WardSearcher) *WardSearchHandler {
	return &WardSearchHandler{
		service: service,
	}
}

// Search handles GET /search?q=&hospital=
func (h *WardSearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	results, err := h.service.Search(r.Context(), query.Get("hospital"), query.Get("q"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, results)
}

// GetHospital handles GET /hospitals/{id}
func (h *WardSearchHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Inspect(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// ListHospitals handles GET /hospitals
func (h *WardSearchHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Hospitals())
}

// Health handles GET /health
func (h *WardSearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Health())
}
