package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wardfinder/backend/internal/api/handlers"
	"github.com/wardfinder/backend/internal/domain/entities"
	apperrors "github.com/wardfinder/backend/pkg/errors"
)

type MockWardSearcher struct {
	mock.Mock
}

func (m *MockWardSearcher) Search(ctx context.Context, hospitalID, query string) ([]entities.LocationRecord, error) {
	args := m.Called(ctx, hospitalID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LocationRecord), args.Error(1)
}

func (m *MockWardSearcher) Inspect(ctx context.Context, hospitalID string) (*entities.HospitalSummary, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HospitalSummary), args.Error(1)
}

func (m *MockWardSearcher) Hospitals() []entities.Hospital {
	args := m.Called()
	return args.Get(0).([]entities.Hospital)
}

func (m *MockWardSearcher) Health() entities.HealthReport {
	args := m.Called()
	return args.Get(0).(entities.HealthReport)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Message
}

func TestWardSearchHandler_Search_ReturnsRecords(t *testing.T) {
	mockService := new(MockWardSearcher)
	handler := handlers.NewWardSearchHandler(mockService)

	expected := []entities.LocationRecord{
		{Name: "X-Ray", AreaColor: "Blue", Type: "Area"},
	}
	mockService.On("Search", mock.Anything, "1", "ray").Return(expected, nil)

	req := httptest.NewRequest("GET", "/search?q=ray&hospital=1", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"name":"X-Ray","floor":"","areaColor":"Blue","bestEntrance":"","location":"","type":"Area"}]`, w.Body.String())
}

func TestWardSearchHandler_Search_EmptyResultIsArray(t *testing.T) {
	mockService := new(MockWardSearcher)
	handler := handlers.NewWardSearchHandler(mockService)
	mockService.On("Search", mock.Anything, "1", "zzz").Return([]entities.LocationRecord{}, nil)

	req := httptest.NewRequest("GET", "/search?q=zzz&hospital=1", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestWardSearchHandler_Search_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperrors.NewValidationError("Missing query param `q` or `hospital`"), http.StatusBadRequest, "Missing query param `q` or `hospital`"},
		{"unknown hospital", apperrors.NewNotFoundError("Invalid hospital ID"), http.StatusNotFound, "Invalid hospital ID"},
		{"missing file", apperrors.NewSourceNotFoundError("Data file not found: a.json", nil), http.StatusInternalServerError, "Data file not found: a.json"},
		{"parse", apperrors.NewParseError("JSON parse error in a.json: bad", nil), http.StatusInternalServerError, "JSON parse error in a.json: bad"},
		{"read", apperrors.NewSourceUnavailableError("File read error for a.json: timeout", nil), http.StatusInternalServerError, "File read error for a.json: timeout"},
		{"internal", apperrors.NewInternalError("secret detail", nil), http.StatusInternalServerError, "internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockWardSearcher)
			handler := handlers.NewWardSearchHandler(mockService)
			mockService.On("Search", mock.Anything, "1", "x").Return(nil, tt.err)

			req := httptest.NewRequest("GET", "/search?q=x&hospital=1", nil)
			w := httptest.NewRecorder()

			handler.Search(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestWardSearchHandler_GetHospital(t *testing.T) {
	mockService := new(MockWardSearcher)
	handler := handlers.NewWardSearchHandler(mockService)
	summary := &entities.HospitalSummary{
		Count:  12,
		Sample: []entities.LocationRecord{{Name: "Cardiology", Location: "Tower", Type: "Department"}},
	}
	mockService.On("Inspect", mock.Anything, "3").Return(summary, nil)

	req := httptest.NewRequest("GET", "/hospitals/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler.GetHospital(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got entities.HospitalSummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, *summary, got)
}

func TestWardSearchHandler_GetHospital_Unknown(t *testing.T) {
	mockService := new(MockWardSearcher)
	handler := handlers.NewWardSearchHandler(mockService)
	mockService.On("Inspect", mock.Anything, "9").Return(nil, apperrors.NewNotFoundError("Invalid hospital ID"))

	req := httptest.NewRequest("GET", "/hospitals/9", nil)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()

	handler.GetHospital(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invalid hospital ID", decodeMessage(t, w))
}

func TestWardSearchHandler_HealthAndList(t *testing.T) {
	mockService := new(MockWardSearcher)
	handler := handlers.NewWardSearchHandler(mockService)
	mockService.On("Health").Return(entities.HealthReport{OK: true, Service: "Hospital API", Files: map[string]string{"1": "eastbourne_hospital.json"}})
	mockService.On("Hospitals").Return([]entities.Hospital{{ID: "1", Name: "Eastbourne Hospital", File: "eastbourne_hospital.json"}})

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"service":"Hospital API","files":{"1":"eastbourne_hospital.json"}}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.ListHospitals(w, httptest.NewRequest("GET", "/hospitals", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"1","name":"Eastbourne Hospital","file":"eastbourne_hospital.json"}]`, w.Body.String())
}

func TestNotFound_IsJSON(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.NotFound(w, httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, decodeMessage(t, w), "/nope")
}
