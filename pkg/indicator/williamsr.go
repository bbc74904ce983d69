package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// WilliamsR is the streaming Williams %R, the mirrored stochastic on a
// -100..0 scale. A flat window yields -100.
type WilliamsR struct {
	Window int

	highs *types.MinMaxQueue
	lows  *types.MinMaxQueue

	value       float64
	updateCount int
}

func NewWilliamsR(window int) (*WilliamsR, error) {
	if window <= 0 {
		return nil, errors.Errorf("williams_r: window must be greater than 0, got %d", window)
	}

	return &WilliamsR{
		Window: window,
		highs:  types.NewMinMaxQueue(window),
		lows:   types.NewMinMaxQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *WilliamsR) Update(high, low, close float64) float64 {
	inc.updateCount++

	inc.highs.Update(high)
	inc.lows.Update(low)

	if !inc.highs.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	highest := inc.highs.Max()
	lowest := inc.lows.Min()

	if highest != lowest {
		inc.value = -100.0 * (highest - close) / (highest - lowest)
	} else {
		inc.value = -100.0
	}
	return inc.value
}

func (inc *WilliamsR) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *WilliamsR) Value() float64 {
	return inc.value
}

func (inc *WilliamsR) Ready() bool {
	return inc.highs.Full()
}

func (inc *WilliamsR) UpdateCount() int {
	return inc.updateCount
}

func (inc *WilliamsR) Outputs() map[string]float64 {
	return map[string]float64{"williams_r": inc.value}
}

func (inc *WilliamsR) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*WilliamsR)(nil)
