// Package risk implements the fire-risk scoring heuristic tuned for the
// Chiquitania region, plus a synthetic record generator for demo data.
package risk

import (
	"math"
	"strings"
)

// ScoreInput holds the environmental inputs of the risk heuristic.
type ScoreInput struct {
	Temperature        float64 // °C
	Humidity           float64 // %
	WindSpeed          float64 // km/h
	DroughtIndex       float64 // 0–10
	VegetationDryness  float64 // %
	HumanActivityIndex float64 // 1–4
	Season             string
}

// Weights of each normalized sub-score.
const (
	tempWeight     = 0.25
	humidityWeight = -0.20
	windWeight     = 0.15
	droughtWeight  = 0.30
	vegWeight      = 0.25
	humanWeight    = 0.15
)

// Score computes a deterministic fire-risk score in [0,100].
//
// Each input is normalized to a 0–100 sub-score: temperature over a
// 20–40°C band, humidity inverted, wind over a 0–20 km/h band, drought
// over its 0–10 scale, vegetation dryness taken directly, and human
// activity over its 1–4 scale. The weighted sum gets a seasonal
// adjustment, a 1.1 proneness multiplier when positive, and is clamped
// to [0,100] and rounded to one decimal.
func Score(in ScoreInput) float64 {
	tempScore := (in.Temperature - 20) / 20 * 100
	humidityScore := 100 - in.Humidity
	windScore := in.WindSpeed / 20 * 100
	droughtScore := in.DroughtIndex / 10 * 100
	vegScore := in.VegetationDryness
	humanScore := (in.HumanActivityIndex - 1) / 3 * 100

	score := tempScore*tempWeight +
		humidityScore*humidityWeight +
		windScore*windWeight +
		droughtScore*droughtWeight +
		vegScore*vegWeight +
		humanScore*humanWeight +
		seasonAdjustment(in.Season)

	if score > 0 {
		score *= 1.1
	}

	score = math.Max(0, math.Min(100, score))
	return math.Round(score*10) / 10
}

// seasonAdjustment returns the additive seasonal term: dry-season labels
// push the score up, rainy-season labels pull it down.
func seasonAdjustment(season string) float64 {
	s := strings.ToLower(season)
	switch {
	case strings.Contains(s, "seca") || strings.Contains(s, "dry"):
		return 30
	case strings.Contains(s, "lluvia") || strings.Contains(s, "rain"):
		return -20
	default:
		return 0
	}
}
