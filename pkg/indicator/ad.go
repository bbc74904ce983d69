package indicator

import (
	"github.com/c2quant/tastream/pkg/types"
)

// AccDist is the accumulation/distribution line: an unbounded running sum
// of money flow volume. A bar with high == low contributes nothing.
type AccDist struct {
	adLine      float64
	updateCount int
}

func NewAccDist() *AccDist {
	return &AccDist{}
}

func (inc *AccDist) Update(high, low, cls, volume float64) float64 {
	inc.updateCount++

	mfm := 0.0
	if high != low {
		mfm = ((cls - low) - (high - cls)) / (high - low)
	}

	inc.adLine += mfm * volume
	return inc.adLine
}

func (inc *AccDist) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close, k.Volume)
}

func (inc *AccDist) Value() float64 {
	return inc.adLine
}

func (inc *AccDist) Ready() bool {
	return inc.updateCount > 0
}

func (inc *AccDist) UpdateCount() int {
	return inc.updateCount
}

func (inc *AccDist) Outputs() map[string]float64 {
	return map[string]float64{"ad": inc.adLine}
}

func (inc *AccDist) Reset() {
	inc.adLine = 0
	inc.updateCount = 0
}

var _ Streaming = (*AccDist)(nil)
