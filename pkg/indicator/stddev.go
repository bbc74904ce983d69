package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// StdDev is the rolling population standard deviation of the close.
type StdDev struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewStdDev(window int) (*StdDev, error) {
	if window <= 0 {
		return nil, errors.Errorf("stddev: window must be greater than 0, got %d", window)
	}

	return &StdDev{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *StdDev) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	stats := types.QueueStats(inc.prices)
	inc.value = stats.Std()
	return inc.value
}

func (inc *StdDev) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *StdDev) Value() float64 {
	return inc.value
}

func (inc *StdDev) Ready() bool {
	return inc.prices.Full()
}

func (inc *StdDev) UpdateCount() int {
	return inc.updateCount
}

func (inc *StdDev) Outputs() map[string]float64 {
	return map[string]float64{"std": inc.value}
}

func (inc *StdDev) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*StdDev)(nil)

// Variance is the rolling population variance of the close.
type Variance struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewVariance(window int) (*Variance, error) {
	if window <= 0 {
		return nil, errors.Errorf("variance: window must be greater than 0, got %d", window)
	}

	return &Variance{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *Variance) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	stats := types.QueueStats(inc.prices)
	inc.value = stats.Var()
	return inc.value
}

func (inc *Variance) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *Variance) Value() float64 {
	return inc.value
}

func (inc *Variance) Ready() bool {
	return inc.prices.Full()
}

func (inc *Variance) UpdateCount() int {
	return inc.updateCount
}

func (inc *Variance) Outputs() map[string]float64 {
	return map[string]float64{"variance": inc.value}
}

func (inc *Variance) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*Variance)(nil)
