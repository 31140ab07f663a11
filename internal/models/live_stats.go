package models

import "fmt"

// Momentum labels which side is applying pressure
type Momentum string

const (
	MomentumHome     Momentum = "home"
	MomentumAway     Momentum = "away"
	MomentumBalanced Momentum = "balanced"
)

// IsValid checks if the momentum label is known
func (m Momentum) IsValid() bool {
	switch m {
	case MomentumHome, MomentumAway, MomentumBalanced:
		return true
	default:
		return false
	}
}

// LiveStats is a point-in-time snapshot of in-play match statistics.
// XGSum is optional: a nil pointer means the provider reported no xG.
type LiveStats struct {
	Minute         int      `json:"minute" validate:"gte=0"`
	ScoreHome      int      `json:"score_home" validate:"gte=0"`
	ScoreAway      int      `json:"score_away" validate:"gte=0"`
	ShotsTotal     int      `json:"shots_total" validate:"gte=0"`
	ShotsBox       int      `json:"shots_box" validate:"gte=0"`
	ShotsOn        int      `json:"shots_on" validate:"gte=0"`
	BigChances     int      `json:"big_chances" validate:"gte=0"`
	Corners        int      `json:"corners" validate:"gte=0"`
	PossessionHome int      `json:"possession_home" validate:"gte=0,lte=100"`
	PossessionAway int      `json:"possession_away" validate:"gte=0,lte=100"`
	Momentum       Momentum `json:"momentum" validate:"required,momentum"`
	XGSum          *float64 `json:"xg_sum,omitempty" validate:"omitempty,gte=0"`
}

// Validate enforces the cross-field constraints the struct tags cannot express
func (s *LiveStats) Validate() error {
	if !s.Momentum.IsValid() {
		return fmt.Errorf("%w: unknown momentum %q", ErrInvalidLiveStats, s.Momentum)
	}
	if s.ShotsBox > s.ShotsTotal {
		return fmt.Errorf("%w: shots_box %d exceeds shots_total %d", ErrInvalidLiveStats, s.ShotsBox, s.ShotsTotal)
	}
	if s.ShotsOn > s.ShotsTotal {
		return fmt.Errorf("%w: shots_on %d exceeds shots_total %d", ErrInvalidLiveStats, s.ShotsOn, s.ShotsTotal)
	}
	return nil
}
