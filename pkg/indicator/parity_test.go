package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Replay parity: every streaming value must match an independent window
// scan over the same prefix.

func TestWMAParity(t *testing.T) {
	wma, err := NewWMA(10)
	require.NoError(t, err)

	closes := closesOf(testBars(80, 71))
	for i, c := range closes {
		v := wma.Update(c)
		if i < 9 {
			assert.True(t, math.IsNaN(v))
			continue
		}

		sum := 0.0
		for j := 0; j < 10; j++ {
			sum += float64(j+1) * closes[i-9+j]
		}
		assert.InDelta(t, sum/55.0, v, 1e-9, "tick %d", i)
	}
}

func TestROCParity(t *testing.T) {
	roc, err := NewROC(12)
	require.NoError(t, err)

	closes := closesOf(testBars(80, 73))
	for i, c := range closes {
		v := roc.Update(c)
		if i < 11 {
			continue
		}

		old := closes[i-11]
		assert.InDelta(t, (c-old)/old*100.0, v, 1e-9, "tick %d", i)
	}
}

func TestMomentumParity(t *testing.T) {
	mom, err := NewMomentum(10)
	require.NoError(t, err)

	closes := closesOf(testBars(60, 79))
	for i, c := range closes {
		v := mom.Update(c)
		if i < 9 {
			continue
		}

		assert.InDelta(t, c-closes[i-9], v, 1e-9, "tick %d", i)
	}
}

func TestWilliamsRParity(t *testing.T) {
	wr, err := NewWilliamsR(14)
	require.NoError(t, err)

	bars := testBars(100, 83)
	for i, b := range bars {
		v := wr.Update(b.High, b.Low, b.Close)
		if i < 13 {
			continue
		}

		highest := math.Inf(-1)
		lowest := math.Inf(1)
		for _, w := range bars[i-13 : i+1] {
			highest = math.Max(highest, w.High)
			lowest = math.Min(lowest, w.Low)
		}

		expected := -100.0
		if highest != lowest {
			expected = -100.0 * (highest - b.Close) / (highest - lowest)
		}
		assert.InDelta(t, expected, v, 1e-9, "tick %d", i)
		assert.GreaterOrEqual(t, v, -100.0)
		assert.LessOrEqual(t, v, 0.0)
	}
}

func TestCCIParity(t *testing.T) {
	cci, err := NewCCI(20, 0.015)
	require.NoError(t, err)

	bars := testBars(100, 89)
	tps := make([]float64, len(bars))
	for i, b := range bars {
		tps[i] = b.TypicalPrice()
	}

	for i, b := range bars {
		v := cci.Update(b.High, b.Low, b.Close)
		if i < 19 {
			continue
		}

		window := tps[i-19 : i+1]
		mean := 0.0
		for _, w := range window {
			mean += w
		}
		mean /= 20.0

		mad := 0.0
		for _, w := range window {
			mad += math.Abs(w - mean)
		}
		mad /= 20.0

		expected := 0.0
		if mad != 0 {
			expected = (tps[i] - mean) / (0.015 * mad)
		}
		assert.InDelta(t, expected, v, 1e-9, "tick %d", i)
	}
}

func TestUltimateOscillatorParity(t *testing.T) {
	uo, err := NewUltimateOscillator(7, 14, 28)
	require.NoError(t, err)

	bars := testBars(120, 97)
	bps := make([]float64, len(bars))
	trs := make([]float64, len(bars))
	for i, b := range bars {
		if i == 0 {
			bps[i] = b.Close - b.Low
			trs[i] = b.High - b.Low
		} else {
			prevClose := bars[i-1].Close
			bps[i] = b.Close - math.Min(b.Low, prevClose)
			trs[i] = math.Max(b.High, prevClose) - math.Min(b.Low, prevClose)
		}
	}

	ratio := func(i, period int) float64 {
		bpSum, trSum := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			bpSum += bps[j]
			trSum += trs[j]
		}
		return bpSum / trSum
	}

	for i, b := range bars {
		v := uo.Update(b.High, b.Low, b.Close)
		if i < 27 {
			continue
		}

		expected := 100.0 * (4.0*ratio(i, 7) + 2.0*ratio(i, 14) + ratio(i, 28)) / 7.0
		assert.InDelta(t, expected, v, 1e-9, "tick %d", i)
	}
}

func TestVarianceAndStdDevParity(t *testing.T) {
	variance, err := NewVariance(20)
	require.NoError(t, err)
	stddev, err := NewStdDev(20)
	require.NoError(t, err)

	closes := closesOf(testBars(100, 101))
	for i, c := range closes {
		vv := variance.Update(c)
		sv := stddev.Update(c)
		if i < 19 {
			continue
		}

		window := closes[i-19 : i+1]
		mean := 0.0
		for _, w := range window {
			mean += w
		}
		mean /= 20.0

		expected := 0.0
		for _, w := range window {
			expected += (w - mean) * (w - mean)
		}
		expected /= 20.0

		assert.InDelta(t, expected, vv, 1e-9, "tick %d", i)
		assert.InDelta(t, math.Sqrt(expected), sv, 1e-9, "tick %d", i)
	}
}

func TestAroonParity(t *testing.T) {
	aroon, err := NewAroon(25)
	require.NoError(t, err)

	bars := testBars(120, 103)
	for i, b := range bars {
		v := aroon.Update(b.High, b.Low)
		if i < 25 {
			continue
		}

		// ties resolve to the most recent extreme
		sinceMax, sinceMin := 0, 0
		maxHigh := math.Inf(-1)
		minLow := math.Inf(1)
		for j := i - 25; j <= i; j++ {
			if bars[j].High >= maxHigh {
				maxHigh = bars[j].High
				sinceMax = i - j
			}
			if bars[j].Low <= minLow {
				minLow = bars[j].Low
				sinceMin = i - j
			}
		}

		assert.InDelta(t, float64(25-sinceMax)/25.0*100.0, v.Up, 1e-9, "tick %d", i)
		assert.InDelta(t, float64(25-sinceMin)/25.0*100.0, v.Down, 1e-9, "tick %d", i)
	}
}

func TestUlcerIndexParity(t *testing.T) {
	ui, err := NewUlcerIndex(14)
	require.NoError(t, err)

	closes := closesOf(testBars(90, 107))
	for i, c := range closes {
		v := ui.Update(c)
		if i < 13 {
			continue
		}

		window := closes[i-13 : i+1]
		runMax := window[0]
		sumSq := 0.0
		for _, w := range window[1:] {
			if w > runMax {
				runMax = w
			}
			dd := 100.0 * (w - runMax) / runMax
			sumSq += dd * dd
		}

		assert.InDelta(t, math.Sqrt(sumSq/14.0), v, 1e-9, "tick %d", i)
	}
}
