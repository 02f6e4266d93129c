package domain

// Coordinates is a WGS84 point in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Weather is the weather snapshot attached to a fire-risk record.
type Weather struct {
	Temperature   float64 // °C
	Humidity      int     // %
	WindSpeed     float64 // km/h
	WindDirection *int    // degrees, optional
	Precipitation *float64
	Season        *string
}

// EnvironmentalFactors describe the terrain and human context around
// a record's location.
type EnvironmentalFactors struct {
	DroughtIndex       float64 // 0–10
	VegetationType     string
	VegetationDryness  int // %
	HumanActivityIndex int // 1–4
	RegionalFactor     float64
}

// DefaultEnvironmentalFactors returns the placeholder factors attached to
// records that arrive without measured environment data (simulation saves
// and reconciled external reports).
func DefaultEnvironmentalFactors() EnvironmentalFactors {
	return EnvironmentalFactors{
		DroughtIndex:       5,
		VegetationType:     "Forest",
		VegetationDryness:  80,
		HumanActivityIndex: 3,
		RegionalFactor:     1,
	}
}

// InitialFire is a single ignition point of a simulation.
type InitialFire struct {
	Lat       float64
	Lng       float64
	Intensity float64
}

// SimulationParameters are the knobs the simulation was run with.
type SimulationParameters struct {
	Temperature     float64
	Humidity        float64
	WindSpeed       float64
	WindDirection   float64
	SimulationSpeed float64
}

// FireRiskRecord is the central entity: one simulated or reconciled
// wildfire-risk observation. Risk, weather and coordinates are immutable
// once written; only Name may change afterwards.
type FireRiskRecord struct {
	ID string

	// SourceID is set when the record was derived from an external
	// incident report. It is the deduplication key for reconciliation.
	SourceID *string

	Timestamp     string // ISO-8601
	Location      string
	Duration      int // minutes
	Name          string
	Volunteers    *int
	VolunteerName *string

	Coordinates          Coordinates
	Weather              Weather
	EnvironmentalFactors EnvironmentalFactors

	FireRisk     float64 // 0–100
	FireDetected bool

	InitialFires []InitialFire
	Parameters   *SimulationParameters
}
