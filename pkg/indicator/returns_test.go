package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReturn(t *testing.T) {
	dr := NewDailyReturn()

	assert.True(t, math.IsNaN(dr.Update(100.0)))
	assert.False(t, dr.Ready())

	assert.InDelta(t, 5.0, dr.Update(105.0), 1e-9)
	assert.True(t, dr.Ready())
	assert.InDelta(t, 5.0, dr.Outputs()["dr"], 1e-9)

	assert.InDelta(t, -100.0/21.0, dr.Update(100.0), 1e-9)
}

func TestDailyLogReturn(t *testing.T) {
	dlr := NewDailyLogReturn()

	assert.True(t, math.IsNaN(dlr.Update(100.0)))
	assert.InDelta(t, math.Log(1.05)*100.0, dlr.Update(105.0), 1e-9)

	// a non-positive price has no log return
	assert.True(t, math.IsNaN(dlr.Update(-5.0)))
	assert.False(t, dlr.Ready())
}

func TestCumulativeReturn(t *testing.T) {
	cr := NewCumulativeReturn()

	// the first bar anchors the series
	assert.InDelta(t, 0.0, cr.Update(100.0), 1e-9)
	assert.True(t, cr.Ready())

	assert.InDelta(t, 10.0, cr.Update(110.0), 1e-9)
	assert.InDelta(t, -10.0, cr.Update(90.0), 1e-9)
}

func TestCompoundLogReturnMatchesCumulative(t *testing.T) {
	clr := NewCompoundLogReturn()
	cr := NewCumulativeReturn()

	// with strictly positive prices the compounded log return equals the
	// plain cumulative return
	for _, c := range closesOf(testBars(100, 61)) {
		v1 := clr.Update(c)
		v2 := cr.Update(c)
		assert.InDelta(t, v2, v1, 1e-6)
	}
}

func TestRollingReturn(t *testing.T) {
	rr, err := NewRollingReturn(5)
	require.NoError(t, err)

	closes := []float64{100, 101, 102, 103, 104, 105, 106}
	for i, c := range closes {
		v := rr.Update(c)
		if i < 4 {
			assert.True(t, math.IsNaN(v))
			continue
		}

		start := closes[i-4]
		assert.InDelta(t, (c-start)/start*100.0, v, 1e-9)
	}
}

func TestMaxDrawdown(t *testing.T) {
	mdd, err := NewMaxDrawdown(252)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(mdd.Update(100.0)))

	// 100 -> 120 -> 90: deepest drop is 25% below the 120 peak
	mdd.Update(120.0)
	assert.InDelta(t, -25.0, mdd.Update(90.0), 1e-9)

	// recovery does not shrink the recorded drawdown
	assert.InDelta(t, -25.0, mdd.Update(130.0), 1e-9)
	assert.LessOrEqual(t, mdd.Value(), 0.0)
}

func TestSharpeRatioFlatSeries(t *testing.T) {
	sharpe, err := NewSharpeRatio(10, 0.0, 252.0)
	require.NoError(t, err)

	var v float64
	for i := 0; i < 20; i++ {
		v = sharpe.Update(100.0)
	}

	// zero volatility reads as 0, not a division blow-up
	assert.True(t, sharpe.Ready())
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestSharpeRatioRisingSeries(t *testing.T) {
	sharpe, err := NewSharpeRatio(10, 0.0, 252.0)
	require.NoError(t, err)

	price := 100.0
	for i := 0; i < 30; i++ {
		price *= 1.0 + 0.001*float64(i%3+1)
		sharpe.Update(price)
	}

	require.True(t, sharpe.Ready())
	assert.Greater(t, sharpe.Value(), 0.0)
}

func TestCalmarRatioNoDrawdown(t *testing.T) {
	calmar, err := NewCalmarRatio(10)
	require.NoError(t, err)

	price := 100.0
	var v float64
	for i := 0; i < 15; i++ {
		price += 1.0
		v = calmar.Update(price)
	}

	// monotonically rising closes have no drawdown
	assert.True(t, calmar.Ready())
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestRollingZScore(t *testing.T) {
	zscore, err := NewRollingZScore(5)
	require.NoError(t, err)

	closes := []float64{1, 2, 3, 4, 5}
	var v float64
	for _, c := range closes {
		v = zscore.Update(c)
	}

	// mean 3, population std sqrt(2)
	assert.InDelta(t, 2.0/math.Sqrt2, v, 1e-9)

	// flat window reads as 0
	zscore.Reset()
	for i := 0; i < 6; i++ {
		v = zscore.Update(7.0)
	}
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestLinRegSlopeLinearSeries(t *testing.T) {
	slope, err := NewLinRegSlope(14)
	require.NoError(t, err)

	price := 50.0
	var v float64
	for i := 0; i < 30; i++ {
		price += 2.5
		v = slope.Update(price)
	}

	assert.True(t, slope.Ready())
	assert.InDelta(t, 2.5, v, 1e-9)
}

func TestRollingPercentile(t *testing.T) {
	p, err := NewRollingPercentile(10)
	require.NoError(t, err)

	var v float64
	for i := 1; i <= 10; i++ {
		v = p.Update(float64(i))
	}

	// a fresh maximum sits at the top of the window
	assert.InDelta(t, 1.0, v, 1e-9)

	// the minimum of the window ranks lowest
	assert.InDelta(t, 0.1, p.Update(0.5), 1e-9)
}
