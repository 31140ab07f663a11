// Package models defines the domain types shared between the fixture source,
// the recommendation engine and the HTTP API.
package models

import "time"

// MatchStatus is the lifecycle state of a fixture
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
)

// IsValid checks if the status is a known lifecycle state
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusLive, MatchStatusFinished:
		return true
	default:
		return false
	}
}

// MatchCard is a fixture listing entry. StartTime is an RFC 3339 timestamp
// kept as a string on the wire.
type MatchCard struct {
	FixtureID string      `json:"fixture_id" validate:"required"`
	League    string      `json:"league" validate:"required"`
	Home      string      `json:"home" validate:"required"`
	Away      string      `json:"away" validate:"required"`
	StartTime string      `json:"start_time" validate:"required"`
	Status    MatchStatus `json:"status" validate:"required,matchstatus"`
}

// KickoffTime parses the start time
func (m *MatchCard) KickoffTime() (time.Time, error) {
	return time.Parse(time.RFC3339, m.StartTime)
}

// IsLive reports whether the fixture is in play
func (m *MatchCard) IsLive() bool {
	return m.Status == MatchStatusLive
}
