package indicator

import (
	"math"

	"github.com/c2quant/tastream/pkg/types"
)

// testBars builds a deterministic pseudo-random walk so replay tests are
// reproducible without fixtures.
func testBars(n int, seed uint64) []types.KBar {
	state := seed
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}

	bars := make([]types.KBar, n)
	cls := 100.0
	for i := range bars {
		open := cls
		cls = open * (1.0 + (next()-0.5)*0.04)
		high := math.Max(open, cls) * (1.0 + next()*0.01)
		low := math.Min(open, cls) * (1.0 - next()*0.01)
		volume := 1000.0 + next()*9000.0
		bars[i] = types.KBar{Open: open, High: high, Low: low, Close: cls, Volume: volume}
	}

	return bars
}

func closesOf(bars []types.KBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
