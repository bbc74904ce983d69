package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA(t *testing.T) {
	ema, err := NewEMA(5)
	require.NoError(t, err)

	// seeds with the first value
	assert.InDelta(t, 10.0, ema.Update(10.0), 1e-9)
	assert.True(t, ema.Ready())

	alpha := 2.0 / 6.0
	expected := 10.0
	for _, v := range []float64{11, 12, 11.5, 13, 12.5} {
		expected = alpha*v + (1.0-alpha)*expected
		assert.InDelta(t, expected, ema.Update(v), 1e-9)
	}
}

func TestEMAReset(t *testing.T) {
	ema, err := NewEMA(5)
	require.NoError(t, err)

	ema.Update(10.0)
	ema.Update(20.0)
	ema.Reset()

	assert.False(t, ema.Ready())
	assert.True(t, math.IsNaN(ema.Value()))

	// reseeds after reset
	assert.InDelta(t, 42.0, ema.Update(42.0), 1e-9)
}
