package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADXBounds(t *testing.T) {
	adx, err := NewADX(14)
	require.NoError(t, err)

	for _, b := range testBars(200, 109) {
		v := adx.Update(b.High, b.Low, b.Close)
		if !adx.Ready() {
			continue
		}

		assert.GreaterOrEqual(t, v.ADX, 0.0)
		assert.LessOrEqual(t, v.ADX, 100.0)
		assert.GreaterOrEqual(t, v.PlusDI, 0.0)
		assert.GreaterOrEqual(t, v.MinusDI, 0.0)
	}
}

func TestVortexPositiveLines(t *testing.T) {
	vortex, err := NewVortex(14)
	require.NoError(t, err)

	for _, b := range testBars(150, 113) {
		v := vortex.Update(b.High, b.Low, b.Close)
		if !vortex.Ready() {
			continue
		}

		assert.GreaterOrEqual(t, v.Plus, 0.0)
		assert.GreaterOrEqual(t, v.Minus, 0.0)
	}
}

func TestDPO(t *testing.T) {
	dpo, err := NewDPO(20)
	require.NoError(t, err)

	closes := closesOf(testBars(100, 127))
	sma, _ := NewSMA(20)
	displacement := 20/2 + 1

	history := make([]float64, 0, len(closes))
	for i, c := range closes {
		v := dpo.Update(c)
		avg := sma.Update(c)
		history = append(history, c)

		if math.IsNaN(avg) || i-displacement+1 < 0 {
			continue
		}

		assert.InDelta(t, history[i-displacement+1]-avg, v, 1e-9, "tick %d", i)
	}
}

func TestTRIXDirection(t *testing.T) {
	trix, err := NewTRIX(14)
	require.NoError(t, err)

	// a steadily rising series keeps the triple-smoothed rate positive
	price := 100.0
	for i := 0; i < 100; i++ {
		price *= 1.01
		trix.Update(price)
	}

	require.True(t, trix.Ready())
	assert.Greater(t, trix.Value(), 0.0)
}

func TestPSARTracksTrend(t *testing.T) {
	psar, err := NewPSAR(0.02, 0.02, 0.2)
	require.NoError(t, err)

	// sustained uptrend: SAR stays below the lows once established
	price := 100.0
	for i := 0; i < 50; i++ {
		price += 1.0
		v := psar.Update(price+0.5, price-0.5, price)
		if i >= 5 {
			assert.True(t, psar.UpTrend())
			assert.Less(t, v, price-0.5, "tick %d", i)
		}
	}

	// a hard collapse forces a reversal
	for i := 0; i < 10; i++ {
		price -= 5.0
		psar.Update(price+0.5, price-0.5, price)
	}
	assert.False(t, psar.UpTrend())
}

func TestPSARInvalidFactors(t *testing.T) {
	_, err := NewPSAR(0.0, 0.02, 0.2)
	assert.Error(t, err)

	_, err = NewPSAR(0.3, 0.02, 0.2)
	assert.Error(t, err)
}
