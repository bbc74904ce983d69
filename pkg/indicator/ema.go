package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// EMA is the streaming exponential moving average with the standard
// multiplier 2/(window+1), seeded with the first pushed value.
// Refer: https://www.investopedia.com/terms/e/ema.asp
type EMA struct {
	Window int

	alpha       float64
	value       float64
	updateCount int
}

func NewEMA(window int) (*EMA, error) {
	if window <= 0 {
		return nil, errors.Errorf("ema: window must be greater than 0, got %d", window)
	}

	return &EMA{
		Window: window,
		alpha:  2.0 / (float64(window) + 1.0),
		value:  math.NaN(),
	}, nil
}

func (inc *EMA) Update(value float64) float64 {
	inc.updateCount++

	if math.IsNaN(inc.value) {
		inc.value = value
	} else {
		inc.value = inc.alpha*value + (1.0-inc.alpha)*inc.value
	}

	return inc.value
}

func (inc *EMA) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *EMA) Value() float64 {
	return inc.value
}

func (inc *EMA) Ready() bool {
	return inc.updateCount > 0
}

func (inc *EMA) UpdateCount() int {
	return inc.updateCount
}

func (inc *EMA) Outputs() map[string]float64 {
	return map[string]float64{"ema": inc.value}
}

func (inc *EMA) Reset() {
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*EMA)(nil)
