package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// TRIX is the streaming triple-smoothed EMA rate of change, in percent.
type TRIX struct {
	Window int

	ema1, ema2, ema3 *EMA
	prevEMA3         float64

	value       float64
	updateCount int
}

func NewTRIX(window int) (*TRIX, error) {
	if window <= 0 {
		return nil, errors.Errorf("trix: window must be greater than 0, got %d", window)
	}

	ema1, _ := NewEMA(window)
	ema2, _ := NewEMA(window)
	ema3, _ := NewEMA(window)

	return &TRIX{
		Window:   window,
		ema1:     ema1,
		ema2:     ema2,
		ema3:     ema3,
		prevEMA3: math.NaN(),
		value:    math.NaN(),
	}, nil
}

func (inc *TRIX) Update(value float64) float64 {
	inc.updateCount++

	ema3 := inc.ema3.Update(inc.ema2.Update(inc.ema1.Update(value)))

	if !math.IsNaN(inc.prevEMA3) && !math.IsNaN(ema3) && inc.prevEMA3 != 0.0 {
		inc.value = 100.0 * (ema3 - inc.prevEMA3) / inc.prevEMA3
	} else {
		inc.value = math.NaN()
	}

	inc.prevEMA3 = ema3
	return inc.value
}

func (inc *TRIX) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *TRIX) Value() float64 {
	return inc.value
}

func (inc *TRIX) Ready() bool {
	return !math.IsNaN(inc.value)
}

func (inc *TRIX) UpdateCount() int {
	return inc.updateCount
}

func (inc *TRIX) Outputs() map[string]float64 {
	return map[string]float64{"trix": inc.value}
}

func (inc *TRIX) Reset() {
	inc.ema1.Reset()
	inc.ema2.Reset()
	inc.ema3.Reset()
	inc.prevEMA3 = math.NaN()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*TRIX)(nil)
