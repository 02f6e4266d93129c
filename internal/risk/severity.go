package risk

// SeverityScore maps the severity label of an external incident report to
// a flat risk score. Labels arrive in Spanish from the reports API.
func SeverityScore(severity string) float64 {
	switch severity {
	case "Leve":
		return 40
	case "Mediano":
		return 65
	case "Grave":
		return 85
	default:
		return 50
	}
}
