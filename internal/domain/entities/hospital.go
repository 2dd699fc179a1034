package entities

// Hospital is a registry entry mapping a hospital identifier to its data file
type Hospital struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	File string `json:"file" yaml:"file"`
}

// SourceStatus reports whether a hospital's data file is present
type SourceStatus struct {
	HospitalID string `json:"hospital_id"`
	File       string `json:"file"`
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
}

// HealthReport is the body of the health endpoint
type HealthReport struct {
	OK      bool              `json:"ok"`
	Service string            `json:"service"`
	Files   map[string]string `json:"files"`
}
