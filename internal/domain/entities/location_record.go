package entities

const (
	// LocationTypeDepartment marks a record that carries a building location
	LocationTypeDepartment = "Department"
	// LocationTypeArea marks a record without a building location
	LocationTypeArea = "Area"
	// UnknownLocationName is used when a raw record has neither name nor title
	UnknownLocationName = "Unknown"
)

// LocationRecord represents a ward, department or area within a hospital in
// the uniform shape returned to clients. Every field is always present.
type LocationRecord struct {
	Name         string `json:"name"`
	Floor        string `json:"floor"`
	AreaColor    string `json:"areaColor"`
	BestEntrance string `json:"bestEntrance"`
	Location     string `json:"location"`
	Type         string `json:"type"`
}

// SearchableFields returns the values matched by a ward search, in a fixed order
func (r LocationRecord) SearchableFields() []string {
	return []string{r.Name, r.Floor, r.AreaColor, r.BestEntrance, r.Location, r.Type}
}

// HospitalSummary is the introspection view of a hospital's normalized data
type HospitalSummary struct {
	Count  int              `json:"count"`
	Sample []LocationRecord `json:"sample"`
}
