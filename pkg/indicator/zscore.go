package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// RollingZScore standardizes the latest close against the window mean and
// population standard deviation. A zero-deviation window yields 0.
type RollingZScore struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewRollingZScore(window int) (*RollingZScore, error) {
	if window <= 0 {
		return nil, errors.Errorf("zscore: window must be greater than 0, got %d", window)
	}

	return &RollingZScore{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *RollingZScore) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	stats := types.QueueStats(inc.prices)
	std := stats.Std()
	if std != 0 {
		inc.value = (value - stats.Mean()) / std
	} else {
		inc.value = 0.0
	}

	return inc.value
}

func (inc *RollingZScore) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *RollingZScore) Value() float64 {
	return inc.value
}

func (inc *RollingZScore) Ready() bool {
	return inc.prices.Full()
}

func (inc *RollingZScore) UpdateCount() int {
	return inc.updateCount
}

func (inc *RollingZScore) Outputs() map[string]float64 {
	return map[string]float64{"zscore": inc.value}
}

func (inc *RollingZScore) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*RollingZScore)(nil)
