package record

import (
	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// SaveSimulationInput carries a simulation result to persist.
type SaveSimulationInput struct {
	Timestamp     string
	Location      string
	Duration      int
	Name          string
	Volunteers    *int
	VolunteerName *string
	Coordinates   domain.Coordinates
	Weather       domain.Weather
	Parameters    *domain.SimulationParameters
	FireRisk      float64
	FireDetected  bool
	InitialFires  []domain.InitialFire
}

// Validate checks required fields and value ranges.
func (in SaveSimulationInput) Validate() error {
	var errs []domain.FieldError

	if in.Timestamp == "" {
		errs = append(errs, domain.FieldError{Field: "timestamp", Message: "required"})
	}
	if in.Location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	if in.Duration <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be positive"})
	}
	if len(in.InitialFires) == 0 {
		errs = append(errs, domain.FieldError{Field: "initialFires", Message: "at least one ignition point required"})
	}
	if in.FireRisk < 0 || in.FireRisk > 100 {
		errs = append(errs, domain.FieldError{Field: "fireRisk", Message: "must be in [0,100]"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in SaveSimulationInput) toRecord() *domain.FireRiskRecord {
	return &domain.FireRiskRecord{
		Timestamp:            in.Timestamp,
		Location:             in.Location,
		Duration:             in.Duration,
		Name:                 in.Name,
		Volunteers:           in.Volunteers,
		VolunteerName:        in.VolunteerName,
		Coordinates:          in.Coordinates,
		Weather:              in.Weather,
		EnvironmentalFactors: domain.DefaultEnvironmentalFactors(),
		FireRisk:             in.FireRisk,
		FireDetected:         in.FireDetected,
		InitialFires:         in.InitialFires,
		Parameters:           in.Parameters,
	}
}
