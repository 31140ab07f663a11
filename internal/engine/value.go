package engine

// ExpectedValue calculates per-unit expected value for a back bet at decimal
// odds: p*o - 1. A nil result means the market price was not supplied and no
// EV can be quoted.
func ExpectedValue(probability float64, odds *float64) *float64 {
	if odds == nil {
		return nil
	}
	ev := probability**odds - 1.0
	return &ev
}
