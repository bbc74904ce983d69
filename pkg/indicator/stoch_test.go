package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStochRange(t *testing.T) {
	stoch, err := NewStoch(14, 3)
	require.NoError(t, err)

	for _, b := range testBars(200, 21) {
		v := stoch.Update(b.High, b.Low, b.Close)
		if !stoch.Ready() {
			assert.True(t, math.IsNaN(v.K))
			continue
		}

		assert.GreaterOrEqual(t, v.K, 0.0)
		assert.LessOrEqual(t, v.K, 100.0)
		if !math.IsNaN(v.D) {
			assert.GreaterOrEqual(t, v.D, 0.0)
			assert.LessOrEqual(t, v.D, 100.0)
		}
	}
}

func TestStochFlatRange(t *testing.T) {
	stoch, err := NewStoch(5, 3)
	require.NoError(t, err)

	// a window with zero high/low spread pins %K to 0
	var v StochValue
	for i := 0; i < 10; i++ {
		v = stoch.Update(100.0, 100.0, 100.0)
	}

	assert.InDelta(t, 0.0, v.K, 1e-9)
}

func TestStochAgainstWindowScan(t *testing.T) {
	stoch, err := NewStoch(14, 3)
	require.NoError(t, err)

	bars := testBars(150, 5)
	for i, b := range bars {
		v := stoch.Update(b.High, b.Low, b.Close)
		if i < 13 {
			continue
		}

		highest := math.Inf(-1)
		lowest := math.Inf(1)
		for _, w := range bars[i-13 : i+1] {
			highest = math.Max(highest, w.High)
			lowest = math.Min(lowest, w.Low)
		}

		expected := 0.0
		if highest != lowest {
			expected = 100.0 * (b.Close - lowest) / (highest - lowest)
		}
		assert.InDelta(t, expected, v.K, 1e-9, "tick %d", i)
	}
}
