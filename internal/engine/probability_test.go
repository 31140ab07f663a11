package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/matchpulse/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func quietFirstHalf() models.LiveStats {
	return models.LiveStats{
		Minute:         27,
		ShotsTotal:     2,
		ShotsBox:       1,
		ShotsOn:        1,
		BigChances:     0,
		Corners:        1,
		PossessionHome: 52,
		PossessionAway: 48,
		Momentum:       models.MomentumBalanced,
		XGSum:          floatPtr(0.25),
	}
}

func TestEstimateProbabilitiesQuietMatch(t *testing.T) {
	est := EstimateProbabilities(quietFirstHalf())

	// 0.30 + 0.02*2 + 0.04*1, xG below the 0.9 trigger
	assert.InDelta(t, 0.38, est.Over25, 1e-9)
	// 0.15 + 0.03*1 + 0.03*1, no momentum bonus when balanced
	assert.InDelta(t, 0.21, est.GoalHT, 1e-9)
	// 0.25 + 0.05 balanced bonus + 0.02*1
	assert.InDelta(t, 0.32, est.BTTS, 1e-9)
}

func TestEstimateProbabilitiesXGBonus(t *testing.T) {
	s := quietFirstHalf()
	s.XGSum = floatPtr(0.9)
	withBonus := EstimateProbabilities(s)

	s.XGSum = nil
	withoutReading := EstimateProbabilities(s)

	assert.InDelta(t, 0.20, withBonus.Over25-withoutReading.Over25, 1e-9)
}

func TestEstimateProbabilitiesMomentumEffects(t *testing.T) {
	s := quietFirstHalf()

	s.Momentum = models.MomentumHome
	oneSided := EstimateProbabilities(s)
	s.Momentum = models.MomentumBalanced
	balanced := EstimateProbabilities(s)

	// Momentum imbalance boosts the first-half goal score, balance boosts BTTS
	assert.InDelta(t, 0.07, oneSided.GoalHT-balanced.GoalHT, 1e-9)
	assert.InDelta(t, 0.05, balanced.BTTS-oneSided.BTTS, 1e-9)
}

func TestOneXTwoDistributionEvenPossession(t *testing.T) {
	s := quietFirstHalf()
	s.PossessionHome = 50
	s.PossessionAway = 50

	est := EstimateProbabilities(s)

	// logistic(0) = 0.5 each side, draw strength 0.20, total 1.2
	assert.InDelta(t, 0.5/1.2, est.OneXTwo.Home, 1e-9)
	assert.InDelta(t, 0.2/1.2, est.OneXTwo.Draw, 1e-9)
	assert.InDelta(t, 0.5/1.2, est.OneXTwo.Away, 1e-9)
	assert.InDelta(t, 1.0, est.OneXTwo.Home+est.OneXTwo.Draw+est.OneXTwo.Away, 1e-9)
}

func TestOneXTwoNormalizedBeforeClamping(t *testing.T) {
	// Any split where no component hits the clamp bounds must sum to exactly 1
	for _, home := range []int{40, 45, 50, 55, 60, 65} {
		s := quietFirstHalf()
		s.PossessionHome = home
		s.PossessionAway = 100 - home

		est := EstimateProbabilities(s)
		sum := est.OneXTwo.Home + est.OneXTwo.Draw + est.OneXTwo.Away
		assert.InDeltaf(t, 1.0, sum, 1e-9, "possession split %d/%d", home, 100-home)
	}
}

func TestOneXTwoClampQuirkPreserved(t *testing.T) {
	// Total possession dominance pushes the weak side below the floor; the
	// floor clamp is applied after normalization and the sum drifts above 1.
	s := quietFirstHalf()
	s.PossessionHome = 100
	s.PossessionAway = 0
	s.Momentum = models.MomentumHome

	est := EstimateProbabilities(s)
	assert.Equal(t, 0.01, est.OneXTwo.Away)
	assert.Greater(t, est.OneXTwo.Home+est.OneXTwo.Draw+est.OneXTwo.Away, 1.0)
}

func TestProbabilitiesAlwaysClamped(t *testing.T) {
	snapshots := []models.LiveStats{
		{Momentum: models.MomentumBalanced},
		{Minute: 90, ShotsTotal: 40, ShotsBox: 30, ShotsOn: 20, BigChances: 8, Corners: 15,
			PossessionHome: 85, PossessionAway: 15, Momentum: models.MomentumHome, XGSum: floatPtr(4.2)},
		{Minute: 1, PossessionHome: 0, PossessionAway: 100, Momentum: models.MomentumAway},
		{Minute: 120, ShotsTotal: 55, ShotsBox: 40, ShotsOn: 33, BigChances: 12, Corners: 20,
			PossessionHome: 50, PossessionAway: 50, Momentum: models.MomentumBalanced, XGSum: floatPtr(6.0)},
	}

	for _, s := range snapshots {
		est := EstimateProbabilities(s)
		for _, p := range []float64{
			est.Over25, est.GoalHT, est.BTTS,
			est.OneXTwo.Home, est.OneXTwo.Draw, est.OneXTwo.Away,
		} {
			assert.GreaterOrEqual(t, p, 0.01)
			assert.LessOrEqual(t, p, 0.95)
			assert.False(t, math.IsNaN(p))
		}
	}
}
