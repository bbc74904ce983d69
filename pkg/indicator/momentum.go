package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// Momentum is the raw price difference against the oldest close retained
// in the window.
type Momentum struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewMomentum(window int) (*Momentum, error) {
	if window <= 0 {
		return nil, errors.Errorf("momentum: window must be greater than 0, got %d", window)
	}

	return &Momentum{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *Momentum) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	inc.value = value - inc.prices.At(0)
	return inc.value
}

func (inc *Momentum) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *Momentum) Value() float64 {
	return inc.value
}

func (inc *Momentum) Ready() bool {
	return inc.prices.Full()
}

func (inc *Momentum) UpdateCount() int {
	return inc.updateCount
}

func (inc *Momentum) Outputs() map[string]float64 {
	return map[string]float64{"momentum": inc.value}
}

func (inc *Momentum) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*Momentum)(nil)
