package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/internal/domain/providers"
	"github.com/wardfinder/backend/internal/domain/repositories"
	"github.com/wardfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/wardfinder/backend/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	// MissingParamsMessage is returned when either search parameter is empty
	MissingParamsMessage = "Missing query param `q` or `hospital`"
	// InvalidHospitalMessage is returned for an id absent from the registry
	InvalidHospitalMessage = "Invalid hospital ID"

	sampleSize = 5
)

// SearchRequest is a ward search after trimming and lower-casing
type SearchRequest struct {
	HospitalID string `validate:"required"`
	Query      string `validate:"required"`
}

var requestValidator = validator.New()

// NewSearchRequest normalizes raw parameters and validates them
func NewSearchRequest(hospitalID, query string) (SearchRequest, error) {
	req := SearchRequest{
		HospitalID: strings.TrimSpace(hospitalID),
		Query:      NormalizeQuery(query),
	}
	if err := requestValidator.Struct(req); err != nil {
		return req, apperrors.NewValidationError(MissingParamsMessage)
	}
	return req, nil
}

// WardSearchService answers ward searches for registered hospitals. It keeps
// no state between calls; every search re-reads the hospital's source.
type WardSearchService struct {
	registry    repositories.HospitalRegistry
	loader      providers.SourceLoader
	serviceName string
	analytics   *SearchAnalyticsService
	metrics     *observability.Metrics
}

// NewWardSearchService creates a new ward search service
func NewWardSearchService(
	registry repositories.HospitalRegistry,
	loader providers.SourceLoader,
	serviceName string,
) *WardSearchService {
	return &WardSearchService{
		registry:    registry,
		loader:      loader,
		serviceName: serviceName,
	}
}

// SetAnalytics enables zero-result tracking
func (s *WardSearchService) SetAnalytics(analytics *SearchAnalyticsService) {
	s.analytics = analytics
}

// SetMetrics enables load and result metrics
func (s *WardSearchService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// Search returns the hospital's records matching query, in file order
func (s *WardSearchService) Search(ctx context.Context, hospitalID, query string) ([]entities.LocationRecord, error) {
	req, err := NewSearchRequest(hospitalID, query)
	if err != nil {
		return nil, err
	}

	ctx, span := observability.StartSpan(ctx, "WardSearchService.Search")
	defer span.End()
	observability.SetSpanAttributes(span, attribute.String("hospital.id", req.HospitalID))

	start := time.Now()
	records, err := s.loadRecords(ctx, req.HospitalID)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	matches := MatchRecords(records, req.Query)
	observability.RecordSearchResults(ctx, s.metrics, req.HospitalID, len(matches))

	if len(matches) == 0 && s.analytics != nil {
		s.analytics.TrackZeroResult(ctx, &entities.SearchEvent{
			HospitalID:      req.HospitalID,
			Query:           query,
			NormalizedQuery: req.Query,
			ResultCount:     0,
			LatencyMs:       time.Since(start).Milliseconds(),
		})
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("hospital_id", req.HospitalID).
		Str("query", req.Query).
		Int("records", len(records)).
		Int("matches", len(matches)).
		Msg("ward search")

	return matches, nil
}

// Inspect returns the record count and the first few records of a hospital
func (s *WardSearchService) Inspect(ctx context.Context, hospitalID string) (*entities.HospitalSummary, error) {
	ctx, span := observability.StartSpan(ctx, "WardSearchService.Inspect")
	defer span.End()

	records, err := s.loadRecords(ctx, strings.TrimSpace(hospitalID))
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	return &entities.HospitalSummary{
		Count:  len(records),
		Sample: records[:min(sampleSize, len(records))],
	}, nil
}

// loadRecords runs Loader, Normalizer and Field Mapper for one hospital
func (s *WardSearchService) loadRecords(ctx context.Context, hospitalID string) ([]entities.LocationRecord, error) {
	hospital, ok := s.registry.Get(hospitalID)
	if !ok {
		return nil, apperrors.NewNotFoundError(InvalidHospitalMessage)
	}

	start := time.Now()
	source, err := s.loader.Load(ctx, s.registry.Locate(hospital))
	observability.RecordSourceLoad(ctx, s.metrics, hospital.ID, err == nil, time.Since(start))
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("hospital_id", hospital.ID).
			Str("file", hospital.File).
			Msg("hospital source unavailable")
		return nil, err
	}

	return ToUniform(NormalizeSource(source)), nil
}

// Hospitals lists the registered hospitals
func (s *WardSearchService) Hospitals() []entities.Hospital {
	return s.registry.List()
}

// Health reports service identity and the hospital file table
func (s *WardSearchService) Health() entities.HealthReport {
	return entities.HealthReport{
		OK:      true,
		Service: s.serviceName,
		Files:   s.registry.Files(),
	}
}

// VerifySources checks every registered data file concurrently. A missing
// file is reported in the result, not as an error.
func (s *WardSearchService) VerifySources(ctx context.Context) ([]entities.SourceStatus, error) {
	hospitals := s.registry.List()
	statuses := make([]entities.SourceStatus, len(hospitals))

	g, gctx := errgroup.WithContext(ctx)
	for i, hospital := range hospitals {
		g.Go(func() error {
			path := s.registry.Locate(hospital)
			exists, err := s.loader.Exists(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", hospital.File, err)
			}
			statuses[i] = entities.SourceStatus{
				HospitalID: hospital.ID,
				File:       hospital.File,
				Path:       path,
				Exists:     exists,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}
