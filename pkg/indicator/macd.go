package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// MACDValue is one MACD output: the fast/slow EMA difference, its signal
// EMA and the histogram between them.
type MACDValue struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD is the streaming moving average convergence divergence.
// Refer: https://www.investopedia.com/terms/m/macd.asp
type MACD struct {
	FastWindow   int
	SlowWindow   int
	SignalWindow int

	fastEMA, slowEMA, signalEMA *EMA

	value       MACDValue
	updateCount int
}

func NewMACD(fastWindow, slowWindow, signalWindow int) (*MACD, error) {
	if fastWindow <= 0 || slowWindow <= 0 || signalWindow <= 0 {
		return nil, errors.Errorf("macd: windows must be greater than 0, got %d/%d/%d",
			fastWindow, slowWindow, signalWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Errorf("macd: fast window %d must be shorter than slow window %d",
			fastWindow, slowWindow)
	}

	fastEMA, _ := NewEMA(fastWindow)
	slowEMA, _ := NewEMA(slowWindow)
	signalEMA, _ := NewEMA(signalWindow)

	return &MACD{
		FastWindow:   fastWindow,
		SlowWindow:   slowWindow,
		SignalWindow: signalWindow,
		fastEMA:      fastEMA,
		slowEMA:      slowEMA,
		signalEMA:    signalEMA,
		value:        MACDValue{MACD: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()},
	}, nil
}

func (inc *MACD) Update(value float64) MACDValue {
	inc.updateCount++

	fast := inc.fastEMA.Update(value)
	slow := inc.slowEMA.Update(value)

	if math.IsNaN(fast) || math.IsNaN(slow) {
		inc.value = MACDValue{MACD: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
		return inc.value
	}

	macd := fast - slow
	signal := inc.signalEMA.Update(macd)
	histogram := math.NaN()
	if !math.IsNaN(signal) {
		histogram = macd - signal
	}

	inc.value = MACDValue{MACD: macd, Signal: signal, Histogram: histogram}
	return inc.value
}

func (inc *MACD) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *MACD) Value() float64 {
	return inc.value.MACD
}

func (inc *MACD) Ready() bool {
	return !math.IsNaN(inc.value.MACD)
}

func (inc *MACD) UpdateCount() int {
	return inc.updateCount
}

func (inc *MACD) Outputs() map[string]float64 {
	return map[string]float64{
		"macd":      inc.value.MACD,
		"signal":    inc.value.Signal,
		"histogram": inc.value.Histogram,
	}
}

func (inc *MACD) Reset() {
	inc.fastEMA.Reset()
	inc.slowEMA.Reset()
	inc.signalEMA.Reset()
	inc.value = MACDValue{MACD: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*MACD)(nil)
