package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// StochValue is one stochastic oscillator output.
type StochValue struct {
	K float64
	D float64
}

// Stoch is the streaming stochastic oscillator: %K locates the close
// within the window's high/low range, %D is the SMA of %K. A flat range
// yields %K = 0.
// Refer: https://www.investopedia.com/terms/s/stochasticoscillator.asp
type Stoch struct {
	KWindow int
	DWindow int

	highs *types.MinMaxQueue
	lows  *types.MinMaxQueue
	dSMA  *SMA

	value       StochValue
	updateCount int
}

func NewStoch(kWindow, dWindow int) (*Stoch, error) {
	if kWindow <= 0 || dWindow <= 0 {
		return nil, errors.Errorf("stoch: windows must be greater than 0, got %d/%d", kWindow, dWindow)
	}

	dSMA, _ := NewSMA(dWindow)
	return &Stoch{
		KWindow: kWindow,
		DWindow: dWindow,
		highs:   types.NewMinMaxQueue(kWindow),
		lows:    types.NewMinMaxQueue(kWindow),
		dSMA:    dSMA,
		value:   StochValue{K: math.NaN(), D: math.NaN()},
	}, nil
}

func (inc *Stoch) Update(high, low, close float64) StochValue {
	inc.updateCount++

	inc.highs.Update(high)
	inc.lows.Update(low)

	if !inc.highs.Full() {
		inc.value = StochValue{K: math.NaN(), D: math.NaN()}
		return inc.value
	}

	highest := inc.highs.Max()
	lowest := inc.lows.Min()

	k := 0.0
	if highest != lowest {
		k = 100.0 * (close - lowest) / (highest - lowest)
	}

	d := inc.dSMA.Update(k)

	inc.value = StochValue{K: k, D: d}
	return inc.value
}

func (inc *Stoch) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *Stoch) Value() float64 {
	return inc.value.K
}

func (inc *Stoch) Ready() bool {
	return inc.highs.Full()
}

func (inc *Stoch) UpdateCount() int {
	return inc.updateCount
}

func (inc *Stoch) Outputs() map[string]float64 {
	return map[string]float64{
		"percent_k": inc.value.K,
		"percent_d": inc.value.D,
	}
}

func (inc *Stoch) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.dSMA.Reset()
	inc.value = StochValue{K: math.NaN(), D: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*Stoch)(nil)
