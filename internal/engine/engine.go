package engine

import "github.com/yourusername/matchpulse/internal/models"

// Market keys used across EV, min-odds and stake maps
const (
	MarketOver25 = "over25"
	MarketGoalHT = "goal_ht"
	MarketBTTS   = "btts"
)

// Static minimum acceptable odds per market. Policy thresholds, not computed.
const (
	MinOddsOver25 = 1.70
	MinOddsGoalHT = 1.60
	MinOddsBTTS   = 1.75
)

// CanonicalModels is the fixed label list reported when the caller asks for
// all models. The labels are metadata only; no label dispatches to distinct
// behavior.
var CanonicalModels = []string{
	"bayes_goals", "bivar_poisson", "bayes_xg", "ensemble", "xt", "xpts", "kelly",
}

// Recommend runs the full pipeline over one snapshot: probability estimates,
// per-market EV against the supplied prices, fractional Kelly stakes and
// rationale, assembled into a single result. Pure; holds no state across
// calls.
func Recommend(stats models.LiveStats, odds models.OddsInput, selected []string, allModels bool) models.RecommendationResult {
	est := EstimateProbabilities(stats)

	modelsUsed := selected
	if allModels {
		modelsUsed = CanonicalModels
	}

	return models.RecommendationResult{
		POver25: Round3(est.Over25),
		PGoalHT: Round3(est.GoalHT),
		PBTTS:   Round3(est.BTTS),
		P1X2: map[string]float64{
			"1": Round3(est.OneXTwo.Home),
			"X": Round3(est.OneXTwo.Draw),
			"2": Round3(est.OneXTwo.Away),
		},
		EV: map[string]*float64{
			MarketOver25: round3Ptr(ExpectedValue(est.Over25, odds.Over25)),
			MarketGoalHT: round3Ptr(ExpectedValue(est.GoalHT, odds.Over05HT)),
			MarketBTTS:   round3Ptr(ExpectedValue(est.BTTS, odds.BTTS)),
		},
		MinOdds: map[string]float64{
			MarketOver25: MinOddsOver25,
			MarketGoalHT: MinOddsGoalHT,
			MarketBTTS:   MinOddsBTTS,
		},
		StakeKelly: map[string]float64{
			MarketOver25: StakeFraction(est.Over25, odds.Over25, KellyMultiplierOver25),
			MarketGoalHT: StakeFraction(est.GoalHT, odds.Over05HT, KellyMultiplierGoalHT),
			MarketBTTS:   StakeFraction(est.BTTS, odds.BTTS, KellyMultiplierBTTS),
		},
		Rationale:  BuildRationale(stats),
		ModelsUsed: append([]string(nil), modelsUsed...),
	}
}
