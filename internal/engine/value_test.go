package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedValueMissingOdds(t *testing.T) {
	for _, p := range []float64{0.01, 0.38, 0.95} {
		assert.Nil(t, ExpectedValue(p, nil))
	}
}

func TestExpectedValuePositiveEdge(t *testing.T) {
	ev := ExpectedValue(0.60, floatPtr(1.90))
	require.NotNil(t, ev)
	assert.InDelta(t, 0.14, *ev, 1e-9)
}

func TestExpectedValueNegativeEdge(t *testing.T) {
	ev := ExpectedValue(0.40, floatPtr(2.00))
	require.NotNil(t, ev)
	assert.InDelta(t, -0.20, *ev, 1e-9)
}

func TestExpectedValueFairOdds(t *testing.T) {
	ev := ExpectedValue(0.50, floatPtr(2.00))
	require.NotNil(t, ev)
	assert.InDelta(t, 0.0, *ev, 1e-9)
}
