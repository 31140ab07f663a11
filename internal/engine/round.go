package engine

import "github.com/shopspring/decimal"

// Round3 rounds to 3 decimal places, half away from zero, matching the
// precision every probability, EV and stake is quoted at on the wire.
func Round3(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(3).Float64()
	return f
}

func round3Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round3(*v)
	return &r
}
