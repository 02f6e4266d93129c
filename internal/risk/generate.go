package risk

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

// Bounding box of the Chiquitos province. Generated base points stay
// inside it; per-record jitter may exceed it by up to jitterDeg.
const (
	latMin    = -18.5
	latMax    = -16.0
	lngMin    = -61.5
	lngMax    = -58.0
	jitterDeg = 0.15
)

// Options customizes a Generate call.
type Options struct {
	// Location pins every record to the given site instead of a random
	// gazetteer entry.
	Location string
	// IDPrefix overrides the default "chq" synthetic id prefix.
	IDPrefix string
}

// Generator produces plausible synthetic fire-risk records. Both the
// random source and the clock are injected so callers needing
// reproducible output can pass a seeded source and a fake clock.
type Generator struct {
	rnd   *rand.Rand
	clock clockwork.Clock
}

// NewGenerator creates a Generator from the given random source and clock.
// A nil clock falls back to real time.
func NewGenerator(src rand.Source, clock clockwork.Clock) *Generator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{rnd: rand.New(src), clock: clock}
}

// Generate returns count synthetic records. count <= 0 yields an empty
// slice. Every record satisfies FireRisk in [0,100]; FireDetected can
// only be true when FireRisk > 75.
func (g *Generator) Generate(count int, opts Options) []domain.FireRiskRecord {
	records := make([]domain.FireRiskRecord, 0, max(count, 0))
	now := g.clock.Now()

	for i := 0; i < count; i++ {
		records = append(records, g.generateOne(now, i, opts))
	}

	return records
}

func (g *Generator) generateOne(now time.Time, i int, opts Options) domain.FireRiskRecord {
	// Timestamp within the past two years.
	ts := now.AddDate(0, 0, -g.rnd.Intn(730))

	location := opts.Location
	if location == "" {
		location = locations[g.rnd.Intn(len(locations))]
	}
	protected := containsMarker(location)

	baseLat := latMin + g.rnd.Float64()*(latMax-latMin)
	baseLng := lngMin + g.rnd.Float64()*(lngMax-lngMin)

	// The national park runs cooler and wetter than the open province.
	tempBase, humidityBase, precipMax := 28.0, 40, 60.0
	if protected {
		tempBase, humidityBase, precipMax = 25.0, 50, 80.0
	}

	temperature := round1(tempBase + g.rnd.Float64()*15)
	humidity := humidityBase + g.rnd.Intn(40)
	windSpeed := round1(g.rnd.Float64() * 20)
	precipitation := round1(g.rnd.Float64() * precipMax)
	windDirection := g.rnd.Intn(360)

	droughtIndex := round1(g.rnd.Float64()*8 + 2)
	vegetationDryness := 30 + g.rnd.Intn(60)
	humanActivity := 1 + g.rnd.Intn(4)

	season := seasons[g.rnd.Intn(len(seasons))]
	vegetation := vegetationTypes[g.rnd.Intn(len(vegetationTypes))]

	fireRisk := Score(ScoreInput{
		Temperature:        temperature,
		Humidity:           float64(humidity),
		WindSpeed:          windSpeed,
		DroughtIndex:       droughtIndex,
		VegetationDryness:  float64(vegetationDryness),
		HumanActivityIndex: float64(humanActivity),
		Season:             season,
	})

	fireDetected := false
	if fireRisk > 75 {
		fireDetected = g.rnd.Float64() > 0.2
	}

	prefix := opts.IDPrefix
	if prefix == "" {
		prefix = "chq"
	}

	return domain.FireRiskRecord{
		ID:        fmt.Sprintf("%s-%d-%d", prefix, now.UnixMilli(), i),
		Timestamp: ts.UTC().Format(time.RFC3339),
		Location:  location,
		Duration:  60,
		Coordinates: domain.Coordinates{
			Lat: round6(baseLat + g.rnd.Float64()*2*jitterDeg - jitterDeg),
			Lng: round6(baseLng + g.rnd.Float64()*2*jitterDeg - jitterDeg),
		},
		Weather: domain.Weather{
			Temperature:   temperature,
			Humidity:      humidity,
			WindSpeed:     windSpeed,
			WindDirection: &windDirection,
			Precipitation: &precipitation,
			Season:        &season,
		},
		EnvironmentalFactors: domain.EnvironmentalFactors{
			DroughtIndex:       droughtIndex,
			VegetationType:     vegetation,
			VegetationDryness:  vegetationDryness,
			HumanActivityIndex: humanActivity,
			RegionalFactor:     RegionalFactor(location),
		},
		FireRisk:     fireRisk,
		FireDetected: fireDetected,
	}
}

func containsMarker(location string) bool {
	return strings.Contains(location, protectedMarker)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
