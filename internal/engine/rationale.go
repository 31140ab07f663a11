package engine

import "github.com/yourusername/matchpulse/internal/models"

// Rationale messages, emitted in rule order
const (
	RationaleOver25Volume   = "High shot volume and quality for Over 2.5 (>=9 shots, >=5 inside the box)."
	RationaleBigChance      = "At least one big chance created."
	RationalePressureWindow = "Pressure window 25-35 with corners and box shots: favours a first-half goal."
	RationaleBTTSSymmetric  = "Symmetric pressure from both sides: BTTS favoured."
	RationaleInsufficient   = "Insufficient signal: waiting for a new spell of pressure."
)

// BuildRationale derives human-readable justification strings from threshold
// rules on the snapshot. Rules are evaluated independently and appended in a
// fixed order; when none fires a single fallback entry is returned, so the
// list is never empty.
func BuildRationale(s models.LiveStats) []string {
	var rationale []string

	if s.ShotsTotal >= 9 && s.ShotsBox >= 5 {
		rationale = append(rationale, RationaleOver25Volume)
	}
	if s.BigChances >= 1 {
		rationale = append(rationale, RationaleBigChance)
	}
	if s.Minute >= 25 && s.Minute <= 35 && s.Corners >= 2 && s.ShotsBox >= 3 {
		rationale = append(rationale, RationalePressureWindow)
	}
	if s.Momentum == models.MomentumBalanced && s.ShotsOn >= 2 {
		rationale = append(rationale, RationaleBTTSSymmetric)
	}

	if len(rationale) == 0 {
		rationale = append(rationale, RationaleInsufficient)
	}
	return rationale
}
