package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2quant/tastream/pkg/indicator"
	"github.com/c2quant/tastream/pkg/types"
)

func TestPresetSizes(t *testing.T) {
	cases := map[string]int{
		"trend":      11,
		"momentum":   12,
		"volatility": 9,
		"volume":     11,
		"others":     11,
		"all":        54,
	}

	for name, size := range cases {
		s, err := NewPreset(name, 0)
		require.NoError(t, err, name)
		assert.Equal(t, size, s.Len(), name)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := NewPreset("bogus", 0)
	assert.Error(t, err)
}

func TestPresetWindowOverride(t *testing.T) {
	s, err := NewPreset("trend", 10)
	require.NoError(t, err)

	sma, ok := s.Get("sma")
	require.True(t, ok)
	assert.Equal(t, 10, sma.(*indicator.SMA).Window)

	// secondary parameters keep their defaults
	macd, ok := s.Get("macd")
	require.True(t, ok)
	assert.Equal(t, 12, macd.(*indicator.MACD).FastWindow)
}

func TestPresetSharpeRiskFree(t *testing.T) {
	s, err := NewPreset("others", 0)
	require.NoError(t, err)

	sharpe, ok := s.Get("sharpe")
	require.True(t, ok)
	assert.InDelta(t, 0.0, sharpe.(*indicator.SharpeRatio).RiskFreeRate, 1e-12)
	assert.InDelta(t, 252.0, sharpe.(*indicator.SharpeRatio).AnnualizationFactor, 1e-12)
}

func TestAllPresetRuns(t *testing.T) {
	s, err := NewPreset("all", 0)
	require.NoError(t, err)

	price := 100.0
	for i := 0; i < 300; i++ {
		price *= 1.0 + 0.002*float64(i%5-2)
		s.PushK(types.KBar{
			Open:   price,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: 1000 + float64(i%7)*300,
		})
	}

	// long enough for every default window, including the 252-bar family
	assert.Equal(t, s.Len(), s.ReadyCount())

	values := s.CurrentValues()
	assert.Contains(t, values, "sma.sma")
	assert.Contains(t, values, "macd.signal")
	assert.Contains(t, values, "stochrsi.d")
	assert.Contains(t, values, "sharpe.sharpe")
	assert.Contains(t, values, "volume_ratio.volume_ratio")
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"trend", "momentum", "volatility", "volume", "others", "all"}, Presets())
}
