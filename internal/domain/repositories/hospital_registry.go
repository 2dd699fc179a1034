package repositories

import (
	"github.com/wardfinder/backend/internal/domain/entities"
)

// HospitalRegistry resolves hospital identifiers to data sources. It is
// immutable once constructed.
type HospitalRegistry interface {
	// Get returns the hospital registered under id
	Get(id string) (entities.Hospital, bool)

	// Locate returns the source locator for a hospital
	Locate(hospital entities.Hospital) string

	// List returns all registered hospitals ordered by id
	List() []entities.Hospital

	// Files returns the id -> file name table
	Files() map[string]string
}
