package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// AwesomeOscillator is the difference between a fast and a slow SMA of
// the bar median price (high+low)/2.
type AwesomeOscillator struct {
	FastWindow int
	SlowWindow int

	fastSMA *SMA
	slowSMA *SMA

	value       float64
	updateCount int
}

func NewAwesomeOscillator(fastWindow, slowWindow int) (*AwesomeOscillator, error) {
	if fastWindow <= 0 || slowWindow <= 0 {
		return nil, errors.Errorf("ao: windows must be greater than 0, got %d/%d", fastWindow, slowWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Errorf("ao: fast window %d must be less than slow window %d", fastWindow, slowWindow)
	}

	fastSMA, _ := NewSMA(fastWindow)
	slowSMA, _ := NewSMA(slowWindow)

	return &AwesomeOscillator{
		FastWindow: fastWindow,
		SlowWindow: slowWindow,
		fastSMA:    fastSMA,
		slowSMA:    slowSMA,
		value:      math.NaN(),
	}, nil
}

func (inc *AwesomeOscillator) Update(high, low float64) float64 {
	inc.updateCount++

	median := (high + low) / 2.0
	fast := inc.fastSMA.Update(median)
	slow := inc.slowSMA.Update(median)

	if math.IsNaN(fast) || math.IsNaN(slow) {
		inc.value = math.NaN()
	} else {
		inc.value = fast - slow
	}

	return inc.value
}

func (inc *AwesomeOscillator) PushK(k types.KBar) {
	inc.Update(k.High, k.Low)
}

func (inc *AwesomeOscillator) Value() float64 {
	return inc.value
}

func (inc *AwesomeOscillator) Ready() bool {
	return inc.slowSMA.Ready()
}

func (inc *AwesomeOscillator) UpdateCount() int {
	return inc.updateCount
}

func (inc *AwesomeOscillator) Outputs() map[string]float64 {
	return map[string]float64{"ao": inc.value}
}

func (inc *AwesomeOscillator) Reset() {
	inc.fastSMA.Reset()
	inc.slowSMA.Reset()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*AwesomeOscillator)(nil)
