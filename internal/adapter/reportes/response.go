package reportes

import (
	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlResponse struct {
	Data struct {
		ObtenerReportes []apiReport `json:"obtenerReportes"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type apiReport struct {
	ID               string `json:"id"`
	NombreReportante string `json:"nombre_reportante"`
	TelefonoContacto string `json:"telefono_contacto"`
	FechaHora        string `json:"fecha_hora"`
	NombreLugar      string `json:"nombre_lugar"`
	Ubicacion        struct {
		// GeoJSON order: [lng, lat].
		Coordinates []float64 `json:"coordinates"`
	} `json:"ubicacion"`
	TipoIncendio     string `json:"tipo_incendio"`
	GravedadIncendio string `json:"gravedad_incendio"`
}

// mapResponse converts API reports into domain reports. Reports without
// a [lng, lat] coordinate pair cannot be placed on the map; their ids
// are returned in dropped so one bad report never poisons the batch.
func mapResponse(reports []apiReport) (out []domain.IncidentReport, dropped []string) {
	out = make([]domain.IncidentReport, 0, len(reports))
	for _, r := range reports {
		if len(r.Ubicacion.Coordinates) != 2 {
			dropped = append(dropped, r.ID)
			continue
		}
		out = append(out, domain.IncidentReport{
			ID:           r.ID,
			ReporterName: r.NombreReportante,
			ContactPhone: r.TelefonoContacto,
			ReportedAt:   r.FechaHora,
			PlaceName:    r.NombreLugar,
			Coordinates: domain.Coordinates{
				Lat: r.Ubicacion.Coordinates[1],
				Lng: r.Ubicacion.Coordinates[0],
			},
			IncidentType: r.TipoIncendio,
			Severity:     r.GravedadIncendio,
		})
	}
	return out, dropped
}
