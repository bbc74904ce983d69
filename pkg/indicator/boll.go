package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// BOLLValue is one Bollinger Bands output.
type BOLLValue struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// BOLL is Bollinger Bands: an SMA middle band with upper/lower bands
// offset by WidthK population standard deviations over the same window.
type BOLL struct {
	Window int
	WidthK float64

	prices *types.Queue

	value       BOLLValue
	updateCount int
}

func NewBOLL(window int, widthK float64) (*BOLL, error) {
	if window <= 0 {
		return nil, errors.Errorf("boll: window must be greater than 0, got %d", window)
	}
	if widthK <= 0 {
		return nil, errors.Errorf("boll: band width must be greater than 0, got %f", widthK)
	}

	return &BOLL{
		Window: window,
		WidthK: widthK,
		prices: types.NewQueue(window),
		value:  BOLLValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()},
	}, nil
}

func (inc *BOLL) Update(value float64) BOLLValue {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = BOLLValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
		return inc.value
	}

	stats := types.QueueStats(inc.prices)
	mid := stats.Mean()
	band := inc.WidthK * stats.Std()

	inc.value = BOLLValue{
		Upper:  mid + band,
		Middle: mid,
		Lower:  mid - band,
	}
	return inc.value
}

func (inc *BOLL) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *BOLL) Value() float64 {
	return inc.value.Upper
}

func (inc *BOLL) Ready() bool {
	return inc.prices.Full()
}

func (inc *BOLL) UpdateCount() int {
	return inc.updateCount
}

func (inc *BOLL) Outputs() map[string]float64 {
	return map[string]float64{
		"upper":  inc.value.Upper,
		"middle": inc.value.Middle,
		"lower":  inc.value.Lower,
	}
}

func (inc *BOLL) Reset() {
	inc.prices.Clear()
	inc.value = BOLLValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*BOLL)(nil)
