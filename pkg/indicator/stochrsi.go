package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// StochRSIValue is one stochastic RSI output: the raw 0..1 stochastic of
// the RSI series plus its smoothed %K and %D lines.
type StochRSIValue struct {
	StochRSI float64
	K        float64
	D        float64
}

// StochRSI applies the stochastic formula to a rolling RSI series. The
// state composes an inner RSI with a window of its outputs; %K smooths
// the raw value, %D smooths %K. %D consumes only defined %K values so its
// running sum is never poisoned during the %K warm-up.
type StochRSI struct {
	RSIWindow   int
	StochWindow int
	KWindow     int
	DWindow     int

	rsi        *RSI
	rsiHistory *types.MinMaxQueue
	kSMA       *SMA
	dSMA       *SMA

	value       StochRSIValue
	updateCount int
}

func NewStochRSI(rsiWindow, stochWindow, kWindow, dWindow int) (*StochRSI, error) {
	if rsiWindow <= 0 || stochWindow <= 0 || kWindow <= 0 || dWindow <= 0 {
		return nil, errors.Errorf("stochrsi: windows must be greater than 0, got %d/%d/%d/%d",
			rsiWindow, stochWindow, kWindow, dWindow)
	}

	rsi, _ := NewRSI(rsiWindow)
	kSMA, _ := NewSMA(kWindow)
	dSMA, _ := NewSMA(dWindow)

	return &StochRSI{
		RSIWindow:   rsiWindow,
		StochWindow: stochWindow,
		KWindow:     kWindow,
		DWindow:     dWindow,
		rsi:         rsi,
		rsiHistory:  types.NewMinMaxQueue(stochWindow),
		kSMA:        kSMA,
		dSMA:        dSMA,
		value:       StochRSIValue{StochRSI: math.NaN(), K: math.NaN(), D: math.NaN()},
	}, nil
}

func (inc *StochRSI) Update(value float64) StochRSIValue {
	inc.updateCount++

	rsi := inc.rsi.Update(value)
	if math.IsNaN(rsi) {
		inc.value = StochRSIValue{StochRSI: math.NaN(), K: math.NaN(), D: math.NaN()}
		return inc.value
	}

	inc.rsiHistory.Update(rsi)
	if !inc.rsiHistory.Full() {
		inc.value = StochRSIValue{StochRSI: math.NaN(), K: math.NaN(), D: math.NaN()}
		return inc.value
	}

	low := inc.rsiHistory.Min()
	high := inc.rsiHistory.Max()

	stochRSI := 0.0
	if high > low {
		stochRSI = (rsi - low) / (high - low)
	}

	k := inc.kSMA.Update(stochRSI)
	d := math.NaN()
	if !math.IsNaN(k) {
		d = inc.dSMA.Update(k)
	}

	inc.value = StochRSIValue{StochRSI: stochRSI, K: k, D: d}
	return inc.value
}

func (inc *StochRSI) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *StochRSI) Value() float64 {
	return inc.value.StochRSI
}

func (inc *StochRSI) Ready() bool {
	return inc.rsiHistory.Full()
}

func (inc *StochRSI) UpdateCount() int {
	return inc.updateCount
}

func (inc *StochRSI) Outputs() map[string]float64 {
	return map[string]float64{
		"stochrsi": inc.value.StochRSI,
		"k":        inc.value.K,
		"d":        inc.value.D,
	}
}

func (inc *StochRSI) Reset() {
	inc.rsi.Reset()
	inc.rsiHistory.Reset()
	inc.kSMA.Reset()
	inc.dSMA.Reset()
	inc.value = StochRSIValue{StochRSI: math.NaN(), K: math.NaN(), D: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*StochRSI)(nil)
