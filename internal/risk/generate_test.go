package risk

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return NewGenerator(rand.NewSource(seed), clock)
}

func TestGenerator_Count(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(1)

	assert.Len(t, g.Generate(0, Options{}), 0)
	assert.Len(t, g.Generate(1, Options{}), 1)
	assert.Len(t, g.Generate(25, Options{}), 25)
	assert.Len(t, g.Generate(-3, Options{}), 0)
}

func TestGenerator_RecordsWithinBounds(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(42)
	records := g.Generate(200, Options{})

	for _, r := range records {
		assert.GreaterOrEqual(t, r.Coordinates.Lat, -18.65)
		assert.LessOrEqual(t, r.Coordinates.Lat, -15.85)
		assert.GreaterOrEqual(t, r.Coordinates.Lng, -61.65)
		assert.LessOrEqual(t, r.Coordinates.Lng, -57.85)

		assert.GreaterOrEqual(t, r.FireRisk, 0.0)
		assert.LessOrEqual(t, r.FireRisk, 100.0)

		if r.FireDetected {
			assert.Greater(t, r.FireRisk, 75.0, "fireDetected requires risk > 75")
		}

		assert.NotEmpty(t, r.Timestamp)
		assert.NotEmpty(t, r.Location)
		assert.Equal(t, 60, r.Duration)

		require.NotNil(t, r.Weather.Season)
		assert.Contains(t, seasons, *r.Weather.Season)

		assert.GreaterOrEqual(t, r.EnvironmentalFactors.DroughtIndex, 2.0)
		assert.LessOrEqual(t, r.EnvironmentalFactors.DroughtIndex, 10.0)
		assert.GreaterOrEqual(t, r.EnvironmentalFactors.HumanActivityIndex, 1)
		assert.LessOrEqual(t, r.EnvironmentalFactors.HumanActivityIndex, 4)
	}
}

func TestGenerator_PinnedLocation(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(7)
	records := g.Generate(30, Options{Location: "San José de Chiquitos"})

	for _, r := range records {
		assert.Equal(t, "San José de Chiquitos", r.Location)
		assert.Equal(t, 1.2, r.EnvironmentalFactors.RegionalFactor)
	}
}

func TestGenerator_UnlistedLocationFactor(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(7)
	records := g.Generate(5, Options{Location: "Puerto Suárez"})

	for _, r := range records {
		assert.Equal(t, 1.0, r.EnvironmentalFactors.RegionalFactor)
	}
}

func TestGenerator_TimestampsWithinTwoYears(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(rand.NewSource(11), clockwork.NewFakeClockAt(now))

	for _, r := range g.Generate(100, Options{}) {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		require.NoError(t, err)
		assert.False(t, ts.After(now))
		assert.False(t, ts.Before(now.AddDate(0, 0, -730)))
	}
}

func TestGenerator_SeededReproducibility(t *testing.T) {
	t.Parallel()

	a := newTestGenerator(99).Generate(10, Options{})
	b := newTestGenerator(99).Generate(10, Options{})

	assert.Equal(t, a, b, "same seed and clock must reproduce the same records")
}

func TestRegionalFactor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.7, RegionalFactor("Parque Nacional Noel Kempff Mercado"))
	assert.Equal(t, 1.15, RegionalFactor("Roboré"))
	assert.Equal(t, 1.0, RegionalFactor("somewhere else"))
}
