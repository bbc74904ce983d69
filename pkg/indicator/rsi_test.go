package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSIRange(t *testing.T) {
	rsi, err := NewRSI(14)
	require.NoError(t, err)

	price := 50.0
	for i := 0; i < 100; i++ {
		price += 0.5
		v := rsi.Update(price)
		if rsi.Ready() {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}

	// strictly rising input has no losses
	assert.InDelta(t, 100.0, rsi.Value(), 1e-9)
}

func TestRSIFlatWindow(t *testing.T) {
	rsi, err := NewRSI(14)
	require.NoError(t, err)

	// all-equal closes give avg loss 0, which reads as no selling pressure
	for i := 0; i < 30; i++ {
		rsi.Update(100.0)
	}

	assert.True(t, rsi.Ready())
	assert.InDelta(t, 100.0, rsi.Value(), 1e-9)
}

func TestRSIWarmUp(t *testing.T) {
	rsi, err := NewRSI(5)
	require.NoError(t, err)

	bars := testBars(20, 7)
	for i, b := range bars {
		v := rsi.Update(b.Close)
		if i < 4 {
			assert.True(t, math.IsNaN(v), "tick %d should be warming up", i)
			assert.False(t, rsi.Ready())
		} else {
			assert.False(t, math.IsNaN(v), "tick %d should be ready", i)
			assert.True(t, rsi.Ready())
		}
	}
}
