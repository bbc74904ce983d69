package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// UlcerIndex is the root mean square of percentage drawdowns from the
// running maximum inside the window.
type UlcerIndex struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewUlcerIndex(window int) (*UlcerIndex, error) {
	if window <= 0 {
		return nil, errors.Errorf("ulcer: window must be greater than 0, got %d", window)
	}

	return &UlcerIndex{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *UlcerIndex) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	runMax := inc.prices.At(0)
	sumSq := 0.0
	for i := 1; i < inc.Window; i++ {
		p := inc.prices.At(i)
		if p > runMax {
			runMax = p
		}
		if runMax > 0 {
			dd := 100.0 * (p - runMax) / runMax
			sumSq += dd * dd
		}
	}

	inc.value = math.Sqrt(sumSq / float64(inc.Window))
	return inc.value
}

func (inc *UlcerIndex) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *UlcerIndex) Value() float64 {
	return inc.value
}

func (inc *UlcerIndex) Ready() bool {
	return inc.prices.Full()
}

func (inc *UlcerIndex) UpdateCount() int {
	return inc.updateCount
}

func (inc *UlcerIndex) Outputs() map[string]float64 {
	return map[string]float64{"ui": inc.value}
}

func (inc *UlcerIndex) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*UlcerIndex)(nil)
