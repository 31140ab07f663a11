package engine

// Per-market fractional Kelly safety multipliers. Raw Kelly is too aggressive
// given model uncertainty; 20-25% of full Kelly is the conventional reduction.
const (
	KellyMultiplierOver25 = 0.25
	KellyMultiplierGoalHT = 0.25
	KellyMultiplierBTTS   = 0.20

	maxStakeFraction = 0.5
)

// StakeFraction calculates the fractional Kelly stake for a back bet.
//
// Kelly: f = edge / b with edge = p - (1-p)/b and net odds b = odds - 1.
// The full fraction is scaled by the per-market safety multiplier, clamped to
// [0, 0.5] and rounded to 3 decimals. Missing odds or non-positive net odds
// mean the edge is fully negative and the stake collapses to zero.
func StakeFraction(probability float64, odds *float64, multiplier float64) float64 {
	if odds == nil {
		return 0.0
	}
	b := *odds - 1.0
	if b <= 0 {
		return 0.0
	}

	edge := probability - (1.0-probability)/b
	fraction := edge / b * multiplier

	if fraction < 0 {
		return 0.0
	}
	if fraction > maxStakeFraction {
		fraction = maxStakeFraction
	}
	return Round3(fraction)
}
