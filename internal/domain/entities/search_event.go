package entities

import (
	"time"
)

// SearchEvent represents a single ward search interaction for analytics.
type SearchEvent struct {
	HospitalID      string    `json:"hospital_id"`
	Query           string    `json:"query"`
	NormalizedQuery string    `json:"normalized_query"`
	ResultCount     int       `json:"result_count"`
	LatencyMs       int64     `json:"latency_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// ZeroResultQuery aggregates searches that matched nothing for a hospital.
type ZeroResultQuery struct {
	HospitalID string `json:"hospital"`
	Query      string `json:"query"`
	Count      int64  `json:"count"`
}
