package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// ForceIndex is an EMA of (close change * volume). The smoother seeds on
// the first raw force value, and the line is withheld until the window
// count is reached.
type ForceIndex struct {
	Window int

	alpha     float64
	prevClose float64
	ema       float64
	hasEMA    bool

	value       float64
	updateCount int
}

func NewForceIndex(window int) (*ForceIndex, error) {
	if window <= 0 {
		return nil, errors.Errorf("forceindex: window must be greater than 0, got %d", window)
	}

	return &ForceIndex{
		Window: window,
		alpha:  2.0 / (float64(window) + 1.0),
		value:  math.NaN(),
	}, nil
}

func (inc *ForceIndex) Update(cls, volume float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevClose = cls
		inc.value = math.NaN()
		return inc.value
	}

	force := (cls - inc.prevClose) * volume
	if !inc.hasEMA {
		inc.ema = force
		inc.hasEMA = true
	} else {
		inc.ema = inc.alpha*force + (1.0-inc.alpha)*inc.ema
	}
	inc.prevClose = cls

	if inc.updateCount < inc.Window {
		inc.value = math.NaN()
	} else {
		inc.value = inc.ema
	}

	return inc.value
}

func (inc *ForceIndex) PushK(k types.KBar) {
	inc.Update(k.Close, k.Volume)
}

func (inc *ForceIndex) Value() float64 {
	return inc.value
}

func (inc *ForceIndex) Ready() bool {
	return inc.updateCount >= inc.Window
}

func (inc *ForceIndex) UpdateCount() int {
	return inc.updateCount
}

func (inc *ForceIndex) Outputs() map[string]float64 {
	return map[string]float64{"fi": inc.value}
}

func (inc *ForceIndex) Reset() {
	inc.prevClose = 0
	inc.ema = 0
	inc.hasEMA = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*ForceIndex)(nil)
