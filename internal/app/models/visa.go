package models

// VisaStep is one step of a visa guide or of the application flow.
type VisaStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// VisaPath names one of the two routes into the country.
type VisaPath string

const (
	VisaPathVisit VisaPath = "visit"
	VisaPathVITAS VisaPath = "vitas"
)
