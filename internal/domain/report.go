package domain

// IncidentReport is an incident as delivered by the external reports API.
type IncidentReport struct {
	ID           string
	ReporterName string
	ContactPhone string
	ReportedAt   string
	PlaceName    string
	Coordinates  Coordinates
	IncidentType string
	Severity     string
}
