package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchpulse/internal/api"
	"github.com/yourusername/matchpulse/internal/config"
	"github.com/yourusername/matchpulse/internal/fixtures"
	"github.com/yourusername/matchpulse/internal/models"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.LoadWithDefaults("testdata/no_such_config.yaml")
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := fixtures.NewStore(time.Minute, log)
	return httptest.NewServer(api.NewServer(cfg, store, log).Routes())
}

func TestTopLeagueMatches(t *testing.T) {
	srv := newTestAPI(t)
	defer srv.Close()

	c := New(DefaultConfig(srv.URL), nil)
	cards, err := c.TopLeagueMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Milan", cards[0].Home)
}

func TestLiveStats(t *testing.T) {
	srv := newTestAPI(t)
	defer srv.Close()

	c := New(DefaultConfig(srv.URL), nil)
	stats, err := c.LiveStats(context.Background(), "1002")
	require.NoError(t, err)
	assert.Equal(t, 27, stats.Minute)
}

func TestLiveStatsUnknownFixture(t *testing.T) {
	srv := newTestAPI(t)
	defer srv.Close()

	c := New(DefaultConfig(srv.URL), nil)
	_, err := c.LiveStats(context.Background(), "9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture")
}

func TestRecommendRoundTrip(t *testing.T) {
	srv := newTestAPI(t)
	defer srv.Close()

	c := New(DefaultConfig(srv.URL), nil)

	stats, err := c.LiveStats(context.Background(), "1002")
	require.NoError(t, err)

	over25 := 1.90
	result, err := c.Recommend(context.Background(), models.RecommendationRequest{
		Stats: stats,
		Odds:  models.OddsInput{Over25: &over25},
	})
	require.NoError(t, err)

	assert.Greater(t, result.POver25, 0.0)
	require.NotNil(t, result.EV["over25"])
	assert.NotEmpty(t, result.Rationale)
	assert.Len(t, result.ModelsUsed, 7)
}

func TestRecommendValidationError(t *testing.T) {
	srv := newTestAPI(t)
	defer srv.Close()

	c := New(DefaultConfig(srv.URL), nil)

	req := models.RecommendationRequest{
		Stats: models.LiveStats{Momentum: "sideways"},
	}
	_, err := c.Recommend(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
