package models

// OddsInput carries bookmaker decimal odds for the markets the engine prices.
// Every field is independently optional; a nil field means no market price
// is available and downstream EV for that market is reported as null.
type OddsInput struct {
	Over25   *float64           `json:"over25,omitempty" validate:"omitempty,gt=1"`
	Over05HT *float64           `json:"over05_ht,omitempty" validate:"omitempty,gt=1"`
	BTTS     *float64           `json:"btts,omitempty" validate:"omitempty,gt=1"`
	OneXTwo  map[string]float64 `json:"oneXtwo,omitempty" validate:"omitempty,dive,gt=1"`
}

// HasAnyMarket reports whether at least one market price was supplied
func (o *OddsInput) HasAnyMarket() bool {
	return o.Over25 != nil || o.Over05HT != nil || o.BTTS != nil || len(o.OneXTwo) > 0
}
