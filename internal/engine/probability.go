// Package engine implements the in-play recommendation core: heuristic
// probability estimates, expected value, fractional Kelly stake sizing and
// rationale generation. Every function is pure and safe for concurrent use.
package engine

import (
	"math"

	"github.com/yourusername/matchpulse/internal/models"
)

const (
	// Reported probabilities never reach exactly 0 or 1
	probabilityFloor = 0.01
	probabilityCeil  = 0.95

	// Fixed draw strength in the unnormalized 1X2 mixture
	drawStrength = 0.20
)

// Distribution is a three-way match outcome distribution
type Distribution struct {
	Home float64
	Draw float64
	Away float64
}

// Estimate holds the calibrated probability estimates for the three goal
// markets plus the 1X2 outcome distribution.
type Estimate struct {
	Over25  float64
	GoalHT  float64
	BTTS    float64
	OneXTwo Distribution
}

// EstimateProbabilities converts a live snapshot into probability estimates.
// The goal-market scores are linear in the pressure signals and clamped into
// [0.01, 0.95]. The 1X2 mixture is normalized to sum to 1 before clamping;
// clamping afterwards can push the sum slightly off 1, which is kept as-is
// for compatibility with existing consumers.
func EstimateProbabilities(s models.LiveStats) Estimate {
	overRaw := 0.30 + 0.02*float64(s.ShotsTotal) + 0.04*float64(s.ShotsBox) + 0.08*float64(s.BigChances)
	if s.XGSum != nil && *s.XGSum >= 0.9 {
		overRaw += 0.20
	}

	goalHTRaw := 0.15 + 0.03*float64(s.ShotsBox) + 0.03*float64(s.Corners)
	if s.Momentum != models.MomentumBalanced {
		goalHTRaw += 0.07
	}

	bttsRaw := 0.25 + 0.02*float64(s.ShotsOn)
	if s.Momentum == models.MomentumBalanced {
		bttsRaw += 0.05
	}

	home := logistic(float64(s.PossessionHome-50) / 10)
	away := logistic(float64(s.PossessionAway-50) / 10)
	draw := drawStrength
	total := home + away + draw

	return Estimate{
		Over25: clampProbability(overRaw),
		GoalHT: clampProbability(goalHTRaw),
		BTTS:   clampProbability(bttsRaw),
		OneXTwo: Distribution{
			Home: clampProbability(home / total),
			Draw: clampProbability(draw / total),
			Away: clampProbability(away / total),
		},
	}
}

// logistic is the standard sigmoid 1 / (1 + e^-x)
func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func clampProbability(p float64) float64 {
	return math.Max(probabilityFloor, math.Min(probabilityCeil, p))
}
