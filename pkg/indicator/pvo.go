package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// PVOValue is one percentage volume oscillator output.
type PVOValue struct {
	PVO       float64
	Signal    float64
	Histogram float64
}

// PVO is the percentage price oscillator applied to volume.
type PVO struct {
	FastWindow   int
	SlowWindow   int
	SignalWindow int

	fastEMA, slowEMA, signalEMA *EMA

	value       PVOValue
	updateCount int
}

func NewPVO(fastWindow, slowWindow, signalWindow int) (*PVO, error) {
	if fastWindow <= 0 || slowWindow <= 0 || signalWindow <= 0 {
		return nil, errors.Errorf("pvo: windows must be greater than 0, got %d/%d/%d",
			fastWindow, slowWindow, signalWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Errorf("pvo: fast window %d must be shorter than slow window %d",
			fastWindow, slowWindow)
	}

	fastEMA, _ := NewEMA(fastWindow)
	slowEMA, _ := NewEMA(slowWindow)
	signalEMA, _ := NewEMA(signalWindow)

	return &PVO{
		FastWindow:   fastWindow,
		SlowWindow:   slowWindow,
		SignalWindow: signalWindow,
		fastEMA:      fastEMA,
		slowEMA:      slowEMA,
		signalEMA:    signalEMA,
		value:        PVOValue{PVO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()},
	}, nil
}

func (inc *PVO) Update(volume float64) PVOValue {
	inc.updateCount++

	fast := inc.fastEMA.Update(volume)
	slow := inc.slowEMA.Update(volume)

	if math.IsNaN(fast) || math.IsNaN(slow) || slow == 0.0 {
		inc.value = PVOValue{PVO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
		return inc.value
	}

	pvo := (fast - slow) / slow * 100.0
	signal := inc.signalEMA.Update(pvo)
	histogram := math.NaN()
	if !math.IsNaN(signal) {
		histogram = pvo - signal
	}

	inc.value = PVOValue{PVO: pvo, Signal: signal, Histogram: histogram}
	return inc.value
}

func (inc *PVO) PushK(k types.KBar) {
	inc.Update(k.Volume)
}

func (inc *PVO) Value() float64 {
	return inc.value.PVO
}

func (inc *PVO) Ready() bool {
	return !math.IsNaN(inc.value.PVO)
}

func (inc *PVO) UpdateCount() int {
	return inc.updateCount
}

func (inc *PVO) Outputs() map[string]float64 {
	return map[string]float64{
		"pvo":       inc.value.PVO,
		"signal":    inc.value.Signal,
		"histogram": inc.value.Histogram,
	}
}

func (inc *PVO) Reset() {
	inc.fastEMA.Reset()
	inc.slowEMA.Reset()
	inc.signalEMA.Reset()
	inc.value = PVOValue{PVO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*PVO)(nil)
