package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/matchpulse/internal/models"
)

func TestBuildRationaleFallback(t *testing.T) {
	got := BuildRationale(quietFirstHalf())
	require.Len(t, got, 1)
	assert.Equal(t, RationaleInsufficient, got[0])
}

func TestBuildRationaleNeverEmpty(t *testing.T) {
	snapshots := []models.LiveStats{
		{},
		quietFirstHalf(),
		{Minute: 60, ShotsTotal: 12, ShotsBox: 7, ShotsOn: 5, BigChances: 2, Corners: 6,
			PossessionHome: 55, PossessionAway: 45, Momentum: models.MomentumHome},
	}
	for _, s := range snapshots {
		assert.NotEmpty(t, BuildRationale(s))
	}
}

func TestBuildRationaleOver25AndBigChanceOrder(t *testing.T) {
	s := quietFirstHalf()
	s.ShotsTotal = 9
	s.ShotsBox = 5
	s.BigChances = 1

	got := BuildRationale(s)
	require.Len(t, got, 2)
	assert.Equal(t, RationaleOver25Volume, got[0])
	assert.Equal(t, RationaleBigChance, got[1])
}

func TestBuildRationalePressureWindow(t *testing.T) {
	s := models.LiveStats{
		Minute:     30,
		ShotsTotal: 4,
		ShotsBox:   3,
		Corners:    2,
		Momentum:   models.MomentumAway,
	}
	assert.Contains(t, BuildRationale(s), RationalePressureWindow)

	// One minute outside the window drops the rule
	s.Minute = 36
	assert.NotContains(t, BuildRationale(s), RationalePressureWindow)
}

func TestBuildRationaleBTTSRequiresBalance(t *testing.T) {
	s := models.LiveStats{ShotsTotal: 3, ShotsOn: 2, Momentum: models.MomentumBalanced}
	assert.Contains(t, BuildRationale(s), RationaleBTTSSymmetric)

	s.Momentum = models.MomentumHome
	assert.NotContains(t, BuildRationale(s), RationaleBTTSSymmetric)
}

func TestBuildRationaleAllRulesFire(t *testing.T) {
	s := models.LiveStats{
		Minute:     28,
		ShotsTotal: 11,
		ShotsBox:   6,
		ShotsOn:    4,
		BigChances: 2,
		Corners:    5,
		Momentum:   models.MomentumBalanced,
	}
	got := BuildRationale(s)
	require.Len(t, got, 4)
	assert.Equal(t, []string{
		RationaleOver25Volume,
		RationaleBigChance,
		RationalePressureWindow,
		RationaleBTTSSymmetric,
	}, got)
}
