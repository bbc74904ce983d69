package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD(t *testing.T) {
	macd, err := NewMACD(12, 26, 9)
	require.NoError(t, err)

	fast, _ := NewEMA(12)
	slow, _ := NewEMA(26)
	signal, _ := NewEMA(9)

	for _, b := range testBars(120, 11) {
		v := macd.Update(b.Close)

		line := fast.Update(b.Close) - slow.Update(b.Close)
		sig := signal.Update(line)

		assert.InDelta(t, line, v.MACD, 1e-9)
		assert.InDelta(t, sig, v.Signal, 1e-9)
		assert.InDelta(t, line-sig, v.Histogram, 1e-9)
	}
}

func TestMACDInvalidWindows(t *testing.T) {
	_, err := NewMACD(26, 12, 9)
	assert.Error(t, err)

	_, err = NewMACD(12, 12, 9)
	assert.Error(t, err)

	_, err = NewMACD(0, 26, 9)
	assert.Error(t, err)
}

func TestMACDOutputs(t *testing.T) {
	macd, err := NewMACD(3, 6, 2)
	require.NoError(t, err)

	for _, b := range testBars(30, 3) {
		macd.PushK(b)
	}

	out := macd.Outputs()
	assert.InDelta(t, macd.Value(), out["macd"], 1e-9)
	assert.InDelta(t, out["macd"]-out["signal"], out["histogram"], 1e-9)
}
