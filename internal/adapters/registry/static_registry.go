package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wardfinder/backend/internal/domain/entities"
	"github.com/wardfinder/backend/internal/domain/repositories"
	"gopkg.in/yaml.v3"
)

// DefaultHospitals is the built-in registry used when no hospitals file is configured
func DefaultHospitals() []entities.Hospital {
	return []entities.Hospital{
		{ID: "1", Name: "Eastbourne Hospital", File: "eastbourne_hospital.json"},
		{ID: "2", Name: "Conquest Hospital", File: "conquest_hospital.json"},
		{ID: "3", Name: "Royal Sussex County Hospital", File: "rsch_departments.json"},
	}
}

// StaticRegistry is an immutable id -> data file table
type StaticRegistry struct {
	dataDir   string
	hospitals map[string]entities.Hospital
	ordered   []entities.Hospital
}

// NewStaticRegistry builds a registry resolving files against dataDir.
// Entries are copied; later changes to the slice do not affect the registry.
func NewStaticRegistry(dataDir string, hospitals []entities.Hospital) (repositories.HospitalRegistry, error) {
	r := &StaticRegistry{
		dataDir:   dataDir,
		hospitals: make(map[string]entities.Hospital, len(hospitals)),
	}

	for i, h := range hospitals {
		h.ID = strings.TrimSpace(h.ID)
		h.File = strings.TrimSpace(h.File)
		if h.ID == "" {
			return nil, fmt.Errorf("hospital at index %d: missing id", i)
		}
		if h.File == "" {
			return nil, fmt.Errorf("hospital %q: missing file", h.ID)
		}
		if _, dup := r.hospitals[h.ID]; dup {
			return nil, fmt.Errorf("hospital %q: duplicate id", h.ID)
		}
		r.hospitals[h.ID] = h
		r.ordered = append(r.ordered, h)
	}

	sort.SliceStable(r.ordered, func(i, j int) bool {
		return lessID(r.ordered[i].ID, r.ordered[j].ID)
	})

	return r, nil
}

// lessID orders numeric ids numerically and everything else lexically after them
func lessID(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// Get returns the hospital registered under id
func (r *StaticRegistry) Get(id string) (entities.Hospital, bool) {
	h, ok := r.hospitals[strings.TrimSpace(id)]
	return h, ok
}

// Locate returns the path of a hospital's data file
func (r *StaticRegistry) Locate(hospital entities.Hospital) string {
	if filepath.IsAbs(hospital.File) {
		return hospital.File
	}
	return filepath.Join(r.dataDir, hospital.File)
}

// List returns all registered hospitals ordered by id
func (r *StaticRegistry) List() []entities.Hospital {
	out := make([]entities.Hospital, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Files returns the id -> file name table
func (r *StaticRegistry) Files() map[string]string {
	files := make(map[string]string, len(r.hospitals))
	for id, h := range r.hospitals {
		files[id] = h.File
	}
	return files
}

type hospitalsFile struct {
	Hospitals []entities.Hospital `yaml:"hospitals"`
}

// LoadHospitalsFile reads a YAML registry of the form
//
//	hospitals:
//	  - id: "1"
//	    name: Eastbourne Hospital
//	    file: eastbourne_hospital.json
func LoadHospitalsFile(path string) ([]entities.Hospital, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hospitals file %s: %w", path, err)
	}

	var parsed hospitalsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse hospitals file %s: %w", path, err)
	}
	if len(parsed.Hospitals) == 0 {
		return nil, fmt.Errorf("hospitals file %s: no hospitals defined", path)
	}

	return parsed.Hospitals, nil
}

// New builds the registry from an optional hospitals file, falling back to DefaultHospitals
func New(dataDir, hospitalsFile string) (repositories.HospitalRegistry, error) {
	hospitals := DefaultHospitals()
	if hospitalsFile != "" {
		loaded, err := LoadHospitalsFile(hospitalsFile)
		if err != nil {
			return nil, err
		}
		hospitals = loaded
	}
	return NewStaticRegistry(dataDir, hospitals)
}
