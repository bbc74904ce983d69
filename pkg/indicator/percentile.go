package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// RollingPercentile is the fraction of window values less than or equal
// to the latest close.
type RollingPercentile struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewRollingPercentile(window int) (*RollingPercentile, error) {
	if window <= 0 {
		return nil, errors.Errorf("percentile: window must be greater than 0, got %d", window)
	}

	return &RollingPercentile{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *RollingPercentile) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	count := 0
	for i := 0; i < inc.Window; i++ {
		if inc.prices.At(i) <= value {
			count++
		}
	}

	inc.value = float64(count) / float64(inc.Window)
	return inc.value
}

func (inc *RollingPercentile) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *RollingPercentile) Value() float64 {
	return inc.value
}

func (inc *RollingPercentile) Ready() bool {
	return inc.prices.Full()
}

func (inc *RollingPercentile) UpdateCount() int {
	return inc.updateCount
}

func (inc *RollingPercentile) Outputs() map[string]float64 {
	return map[string]float64{"percentile": inc.value}
}

func (inc *RollingPercentile) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*RollingPercentile)(nil)
