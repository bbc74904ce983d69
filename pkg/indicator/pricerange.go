package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// PriceRange is the spread between the highest high and lowest low over
// the window.
type PriceRange struct {
	Window int

	highs *types.MinMaxQueue
	lows  *types.MinMaxQueue

	value       float64
	updateCount int
}

func NewPriceRange(window int) (*PriceRange, error) {
	if window <= 0 {
		return nil, errors.Errorf("range: window must be greater than 0, got %d", window)
	}

	return &PriceRange{
		Window: window,
		highs:  types.NewMinMaxQueue(window),
		lows:   types.NewMinMaxQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *PriceRange) Update(high, low float64) float64 {
	inc.updateCount++
	inc.highs.Update(high)
	inc.lows.Update(low)

	if !inc.highs.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	inc.value = inc.highs.Max() - inc.lows.Min()
	return inc.value
}

func (inc *PriceRange) PushK(k types.KBar) {
	inc.Update(k.High, k.Low)
}

func (inc *PriceRange) Value() float64 {
	return inc.value
}

func (inc *PriceRange) Ready() bool {
	return inc.highs.Full()
}

func (inc *PriceRange) UpdateCount() int {
	return inc.updateCount
}

func (inc *PriceRange) Outputs() map[string]float64 {
	return map[string]float64{"range": inc.value}
}

func (inc *PriceRange) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*PriceRange)(nil)
