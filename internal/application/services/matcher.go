package services

import (
	"strings"

	"github.com/wardfinder/backend/internal/domain/entities"
)

// NormalizeQuery lower-cases and trims a search query
func NormalizeQuery(query string) string {
	return strings.TrimSpace(strings.ToLower(query))
}

// MatchRecords keeps the records where any searchable field contains the
// query, ignoring case. Input order is preserved; no match yields an empty
// slice.
func MatchRecords(records []entities.LocationRecord, query string) []entities.LocationRecord {
	needle := NormalizeQuery(query)

	matches := []entities.LocationRecord{}
	for _, record := range records {
		if recordMatches(record, needle) {
			matches = append(matches, record)
		}
	}
	return matches
}

func recordMatches(record entities.LocationRecord, needle string) bool {
	for _, field := range record.SearchableFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
