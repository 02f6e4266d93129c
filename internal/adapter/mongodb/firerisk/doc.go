package firerisk

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// recordDoc is the BSON shape of a fire-risk record. Field names match
// the documents the original frontend already reads.
type recordDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SourceID      *string            `bson:"sourceId,omitempty"`
	Timestamp     string             `bson:"timestamp"`
	Location      string             `bson:"location"`
	Duration      int                `bson:"duration"`
	Name          string             `bson:"name"`
	Volunteers    *int               `bson:"volunteers,omitempty"`
	VolunteerName *string            `bson:"volunteerName,omitempty"`
	Coordinates   coordinatesDoc     `bson:"coordinates"`
	Weather       weatherDoc         `bson:"weather"`
	Environmental envFactorsDoc      `bson:"environmentalFactors"`
	FireRisk      float64            `bson:"fireRisk"`
	FireDetected  bool               `bson:"fireDetected"`
	InitialFires  []initialFireDoc   `bson:"initialFires"`
	Parameters    *parametersDoc     `bson:"parameters,omitempty"`
}

type coordinatesDoc struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type weatherDoc struct {
	Temperature   float64  `bson:"temperature"`
	Humidity      int      `bson:"humidity"`
	WindSpeed     float64  `bson:"windSpeed"`
	WindDirection *int     `bson:"windDirection,omitempty"`
	Precipitation *float64 `bson:"precipitation,omitempty"`
	Season        *string  `bson:"season,omitempty"`
}

type envFactorsDoc struct {
	DroughtIndex       float64 `bson:"droughtIndex"`
	VegetationType     string  `bson:"vegetationType"`
	VegetationDryness  int     `bson:"vegetationDryness"`
	HumanActivityIndex int     `bson:"humanActivityIndex"`
	RegionalFactor     float64 `bson:"regionalFactor"`
}

type initialFireDoc struct {
	Lat       float64 `bson:"lat"`
	Lng       float64 `bson:"lng"`
	Intensity float64 `bson:"intensity"`
}

type parametersDoc struct {
	Temperature     float64 `bson:"temperature"`
	Humidity        float64 `bson:"humidity"`
	WindSpeed       float64 `bson:"windSpeed"`
	WindDirection   float64 `bson:"windDirection"`
	SimulationSpeed float64 `bson:"simulationSpeed"`
}

func fromDomain(rec *domain.FireRiskRecord) *recordDoc {
	doc := &recordDoc{
		SourceID:      rec.SourceID,
		Timestamp:     rec.Timestamp,
		Location:      rec.Location,
		Duration:      rec.Duration,
		Name:          rec.Name,
		Volunteers:    rec.Volunteers,
		VolunteerName: rec.VolunteerName,
		Coordinates:   coordinatesDoc{Lat: rec.Coordinates.Lat, Lng: rec.Coordinates.Lng},
		Weather: weatherDoc{
			Temperature:   rec.Weather.Temperature,
			Humidity:      rec.Weather.Humidity,
			WindSpeed:     rec.Weather.WindSpeed,
			WindDirection: rec.Weather.WindDirection,
			Precipitation: rec.Weather.Precipitation,
			Season:        rec.Weather.Season,
		},
		Environmental: envFactorsDoc{
			DroughtIndex:       rec.EnvironmentalFactors.DroughtIndex,
			VegetationType:     rec.EnvironmentalFactors.VegetationType,
			VegetationDryness:  rec.EnvironmentalFactors.VegetationDryness,
			HumanActivityIndex: rec.EnvironmentalFactors.HumanActivityIndex,
			RegionalFactor:     rec.EnvironmentalFactors.RegionalFactor,
		},
		FireRisk:     rec.FireRisk,
		FireDetected: rec.FireDetected,
	}

	doc.InitialFires = make([]initialFireDoc, 0, len(rec.InitialFires))
	for _, f := range rec.InitialFires {
		doc.InitialFires = append(doc.InitialFires, initialFireDoc(f))
	}

	if rec.Parameters != nil {
		doc.Parameters = &parametersDoc{
			Temperature:     rec.Parameters.Temperature,
			Humidity:        rec.Parameters.Humidity,
			WindSpeed:       rec.Parameters.WindSpeed,
			WindDirection:   rec.Parameters.WindDirection,
			SimulationSpeed: rec.Parameters.SimulationSpeed,
		}
	}

	return doc
}

func toDomain(doc *recordDoc) domain.FireRiskRecord {
	rec := domain.FireRiskRecord{
		ID:            doc.ID.Hex(),
		SourceID:      doc.SourceID,
		Timestamp:     doc.Timestamp,
		Location:      doc.Location,
		Duration:      doc.Duration,
		Name:          doc.Name,
		Volunteers:    doc.Volunteers,
		VolunteerName: doc.VolunteerName,
		Coordinates:   domain.Coordinates{Lat: doc.Coordinates.Lat, Lng: doc.Coordinates.Lng},
		Weather: domain.Weather{
			Temperature:   doc.Weather.Temperature,
			Humidity:      doc.Weather.Humidity,
			WindSpeed:     doc.Weather.WindSpeed,
			WindDirection: doc.Weather.WindDirection,
			Precipitation: doc.Weather.Precipitation,
			Season:        doc.Weather.Season,
		},
		EnvironmentalFactors: domain.EnvironmentalFactors{
			DroughtIndex:       doc.Environmental.DroughtIndex,
			VegetationType:     doc.Environmental.VegetationType,
			VegetationDryness:  doc.Environmental.VegetationDryness,
			HumanActivityIndex: doc.Environmental.HumanActivityIndex,
			RegionalFactor:     doc.Environmental.RegionalFactor,
		},
		FireRisk:     doc.FireRisk,
		FireDetected: doc.FireDetected,
	}

	rec.InitialFires = make([]domain.InitialFire, 0, len(doc.InitialFires))
	for _, f := range doc.InitialFires {
		rec.InitialFires = append(rec.InitialFires, domain.InitialFire(f))
	}

	if doc.Parameters != nil {
		rec.Parameters = &domain.SimulationParameters{
			Temperature:     doc.Parameters.Temperature,
			Humidity:        doc.Parameters.Humidity,
			WindSpeed:       doc.Parameters.WindSpeed,
			WindDirection:   doc.Parameters.WindDirection,
			SimulationSpeed: doc.Parameters.SimulationSpeed,
		}
	}

	return rec
}
