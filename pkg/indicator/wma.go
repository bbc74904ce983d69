package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// WMA is the streaming linearly-weighted moving average: the newest value
// carries weight `window`, the oldest weight 1.
type WMA struct {
	Window int

	rawValues   *types.Queue
	sumWeights  float64
	value       float64
	updateCount int
}

func NewWMA(window int) (*WMA, error) {
	if window <= 0 {
		return nil, errors.Errorf("wma: window must be greater than 0, got %d", window)
	}

	w := float64(window)
	return &WMA{
		Window:     window,
		rawValues:  types.NewQueue(window),
		sumWeights: w * (w + 1.0) / 2.0,
		value:      math.NaN(),
	}, nil
}

func (inc *WMA) Update(value float64) float64 {
	inc.updateCount++
	inc.rawValues.Update(value)

	if !inc.rawValues.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	var weightedSum float64
	for i := 0; i < inc.Window; i++ {
		weightedSum += inc.rawValues.At(i) * float64(i+1)
	}

	inc.value = weightedSum / inc.sumWeights
	return inc.value
}

func (inc *WMA) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *WMA) Value() float64 {
	return inc.value
}

func (inc *WMA) Ready() bool {
	return inc.rawValues.Full()
}

func (inc *WMA) UpdateCount() int {
	return inc.updateCount
}

func (inc *WMA) Outputs() map[string]float64 {
	return map[string]float64{"wma": inc.value}
}

func (inc *WMA) Reset() {
	inc.rawValues.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*WMA)(nil)
