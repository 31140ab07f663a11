package models

// DefaultModelSelection is the selection applied when the caller names no models
var DefaultModelSelection = []string{
	"bayes_goals", "bivar_poisson", "bayes_xg", "ensemble", "xt", "xpts",
}

// RecommendationRequest is the payload accepted by the recommendation endpoint.
// AllModels defaults to true when omitted, so decoding uses a pointer.
type RecommendationRequest struct {
	Stats          LiveStats `json:"stats" validate:"required"`
	Odds           OddsInput `json:"odds"`
	ModelsSelected []string  `json:"models_selected,omitempty"`
	AllModels      *bool     `json:"all_models,omitempty"`
}

// UseAllModels resolves the all_models flag with its default
func (r *RecommendationRequest) UseAllModels() bool {
	if r.AllModels == nil {
		return true
	}
	return *r.AllModels
}

// SelectedModels resolves the model selection with its default
func (r *RecommendationRequest) SelectedModels() []string {
	if len(r.ModelsSelected) == 0 {
		return DefaultModelSelection
	}
	return r.ModelsSelected
}

// RecommendationResult aggregates probability estimates, per-market expected
// value, minimum acceptable odds, stake sizing and rationale for one snapshot.
// EV entries are nil when the corresponding market price was not supplied.
type RecommendationResult struct {
	POver25    float64            `json:"p_over25"`
	PGoalHT    float64            `json:"p_goal_ht"`
	PBTTS      float64            `json:"p_btts"`
	P1X2       map[string]float64 `json:"p_1x2"`
	EV         map[string]*float64 `json:"ev"`
	MinOdds    map[string]float64 `json:"min_odds"`
	StakeKelly map[string]float64 `json:"stake_kelly"`
	Rationale  []string           `json:"rationale"`
	ModelsUsed []string           `json:"models_used"`
}
