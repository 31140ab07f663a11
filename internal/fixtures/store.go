// Package fixtures provides the in-memory mock match data source: top-league
// fixture cards and synthetic live statistics snapshots. It stands in for a
// real provider feed; the recommendation core only ever sees its output.
package fixtures

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchpulse/internal/models"
)

const baseSnapshotMinute = 27

// Store serves mock fixtures and caches the synthetic live snapshot per
// fixture so repeated polls inside the TTL observe a stable match state.
type Store struct {
	snapshots *cache.Cache
	logger    *logrus.Logger

	mu      sync.RWMutex
	matches []models.MatchCard
	elapsed int
}

// NewStore creates a store seeded with the static top-league fixture list
func NewStore(snapshotTTL time.Duration, logger *logrus.Logger) *Store {
	return &Store{
		snapshots: cache.New(snapshotTTL, snapshotTTL*2),
		logger:    logger,
		matches: []models.MatchCard{
			{
				FixtureID: "1001",
				League:    "Serie A",
				Home:      "Milan",
				Away:      "Roma",
				StartTime: "2025-10-06T19:45:00Z",
				Status:    models.MatchStatusScheduled,
			},
			{
				FixtureID: "1002",
				League:    "Premier League",
				Home:      "Arsenal",
				Away:      "Newcastle",
				StartTime: "2025-10-06T20:00:00Z",
				Status:    models.MatchStatusLive,
			},
		},
	}
}

// TopLeagueMatches returns the current fixture cards
func (s *Store) TopLeagueMatches() []models.MatchCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MatchCard(nil), s.matches...)
}

// Match looks up a fixture card by ID
func (s *Store) Match(fixtureID string) (models.MatchCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.FixtureID == fixtureID {
			return m, nil
		}
	}
	return models.MatchCard{}, models.ErrNotFound
}

// LiveStats returns the synthetic live snapshot for a fixture. Snapshots are
// cached per fixture until the TTL expires or the store clock advances.
func (s *Store) LiveStats(fixtureID string) (models.LiveStats, error) {
	if _, err := s.Match(fixtureID); err != nil {
		return models.LiveStats{}, err
	}

	if cached, found := s.snapshots.Get(fixtureID); found {
		if snapshot, ok := cached.(models.LiveStats); ok {
			return snapshot, nil
		}
	}

	s.mu.RLock()
	minute := baseSnapshotMinute + s.elapsed
	s.mu.RUnlock()

	snapshot := syntheticSnapshot(minute)
	s.snapshots.SetDefault(fixtureID, snapshot)
	return snapshot, nil
}

// Advance moves the mock match clock forward one minute and drops cached
// snapshots so the next poll observes the new state.
func (s *Store) Advance() {
	s.mu.Lock()
	s.elapsed++
	elapsed := s.elapsed
	s.mu.Unlock()

	s.snapshots.Flush()

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"elapsed_minutes": elapsed,
		}).Debug("Fixture clock advanced")
	}
}

// Ready reports whether the store is seeded, for readiness checks
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches) > 0
}

// syntheticSnapshot builds the deterministic mock snapshot for a match
// minute. At the base minute it matches the canonical quiet first half; the
// pressure signals then grow slowly with the clock.
func syntheticSnapshot(minute int) models.LiveStats {
	extra := minute - baseSnapshotMinute
	if extra < 0 {
		extra = 0
	}

	xg := 0.25 + 0.03*float64(extra)
	return models.LiveStats{
		Minute:         minute,
		ScoreHome:      0,
		ScoreAway:      0,
		ShotsTotal:     2 + extra/6,
		ShotsBox:       1 + extra/12,
		ShotsOn:        1 + extra/12,
		BigChances:     extra / 30,
		Corners:        1 + extra/10,
		PossessionHome: 52,
		PossessionAway: 48,
		Momentum:       models.MomentumBalanced,
		XGSum:          &xg,
	}
}
