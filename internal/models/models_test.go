package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLiveStatsValidate(t *testing.T) {
	valid := LiveStats{Minute: 27, ShotsTotal: 2, ShotsBox: 1, ShotsOn: 1, Momentum: MomentumBalanced}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	onTarget := valid
	onTarget.ShotsOn = 3
	if err := onTarget.Validate(); !errors.Is(err, ErrInvalidLiveStats) {
		t.Errorf("expected ErrInvalidLiveStats for shots_on > shots_total, got %v", err)
	}

	inBox := valid
	inBox.ShotsBox = 3
	if err := inBox.Validate(); !errors.Is(err, ErrInvalidLiveStats) {
		t.Errorf("expected ErrInvalidLiveStats for shots_box > shots_total, got %v", err)
	}

	momentum := valid
	momentum.Momentum = "sideways"
	if err := momentum.Validate(); !errors.Is(err, ErrInvalidLiveStats) {
		t.Errorf("expected ErrInvalidLiveStats for unknown momentum, got %v", err)
	}
}

func TestMomentumIsValid(t *testing.T) {
	for _, m := range []Momentum{MomentumHome, MomentumAway, MomentumBalanced} {
		if !m.IsValid() {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if Momentum("neutral").IsValid() {
		t.Error("expected 'neutral' to be invalid")
	}
}

func TestRecommendationRequestDefaults(t *testing.T) {
	var req RecommendationRequest
	if err := json.Unmarshal([]byte(`{"stats":{"momentum":"balanced"},"odds":{}}`), &req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !req.UseAllModels() {
		t.Error("expected all_models to default to true when omitted")
	}
	if len(req.SelectedModels()) != 6 {
		t.Errorf("expected default selection of 6 labels, got %d", len(req.SelectedModels()))
	}

	explicit := false
	req.AllModels = &explicit
	if req.UseAllModels() {
		t.Error("expected explicit all_models=false to win")
	}
}

func TestOddsInputOptionalFields(t *testing.T) {
	var odds OddsInput
	if err := json.Unmarshal([]byte(`{"over25":1.9}`), &odds); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if odds.Over25 == nil || *odds.Over25 != 1.9 {
		t.Errorf("expected over25 odds 1.9, got %v", odds.Over25)
	}
	if odds.Over05HT != nil || odds.BTTS != nil {
		t.Error("expected absent markets to stay nil")
	}
	if !odds.HasAnyMarket() {
		t.Error("expected HasAnyMarket to be true")
	}
	if (&OddsInput{}).HasAnyMarket() {
		t.Error("expected empty odds to have no market")
	}
}

func TestMatchCardKickoffTime(t *testing.T) {
	card := MatchCard{StartTime: "2025-10-06T19:45:00Z", Status: MatchStatusScheduled}
	ts, err := card.KickoffTime()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ts.Hour() != 19 || ts.Minute() != 45 {
		t.Errorf("unexpected kickoff time %v", ts)
	}
	if card.IsLive() {
		t.Error("expected scheduled fixture not to be live")
	}

	if _, err := (&MatchCard{StartTime: "tonight"}).KickoffTime(); err == nil {
		t.Error("expected parse error for malformed start time")
	}

	if !MatchStatus("live").IsValid() || MatchStatus("postponed").IsValid() {
		t.Error("unexpected status validity")
	}
}

func TestOddsInputOneXTwoCountsAsMarket(t *testing.T) {
	odds := OddsInput{OneXTwo: map[string]float64{"1": 2.5}}
	if !odds.HasAnyMarket() {
		t.Error("expected 1X2 prices to count as a market")
	}
}
