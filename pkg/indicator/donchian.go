package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// DonchianValue is one Donchian channel output.
type DonchianValue struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// Donchian is the Donchian channel: the highest high and lowest low over
// the window, with a midpoint band between them.
type Donchian struct {
	Window int

	highs *types.MinMaxQueue
	lows  *types.MinMaxQueue

	value       DonchianValue
	updateCount int
}

func NewDonchian(window int) (*Donchian, error) {
	if window <= 0 {
		return nil, errors.Errorf("donchian: window must be greater than 0, got %d", window)
	}

	return &Donchian{
		Window: window,
		highs:  types.NewMinMaxQueue(window),
		lows:   types.NewMinMaxQueue(window),
		value:  DonchianValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()},
	}, nil
}

func (inc *Donchian) Update(high, low float64) DonchianValue {
	inc.updateCount++
	inc.highs.Update(high)
	inc.lows.Update(low)

	if !inc.highs.Full() {
		inc.value = DonchianValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
		return inc.value
	}

	upper := inc.highs.Max()
	lower := inc.lows.Min()
	inc.value = DonchianValue{
		Upper:  upper,
		Middle: (upper + lower) / 2.0,
		Lower:  lower,
	}
	return inc.value
}

func (inc *Donchian) PushK(k types.KBar) {
	inc.Update(k.High, k.Low)
}

func (inc *Donchian) Value() float64 {
	return inc.value.Upper
}

func (inc *Donchian) Ready() bool {
	return inc.highs.Full()
}

func (inc *Donchian) UpdateCount() int {
	return inc.updateCount
}

func (inc *Donchian) Outputs() map[string]float64 {
	return map[string]float64{
		"upper":  inc.value.Upper,
		"middle": inc.value.Middle,
		"lower":  inc.value.Lower,
	}
}

func (inc *Donchian) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.value = DonchianValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*Donchian)(nil)
