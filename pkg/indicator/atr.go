package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// ATR is the average true range with Wilder smoothing. The first bar's
// true range is high-low since no previous close exists yet.
type ATR struct {
	Window int

	atr       float64
	prevClose float64
	count     int

	value       float64
	updateCount int
}

func NewATR(window int) (*ATR, error) {
	if window <= 0 {
		return nil, errors.Errorf("atr: window must be greater than 0, got %d", window)
	}

	return &ATR{
		Window: window,
		value:  math.NaN(),
	}, nil
}

func (inc *ATR) Update(high, low, cls float64) float64 {
	inc.updateCount++

	var tr float64
	if inc.count == 0 {
		tr = high - low
	} else {
		tr = trueRange(high, low, inc.prevClose)
	}
	inc.prevClose = cls

	if inc.count == 0 {
		inc.atr = tr
	} else {
		inc.atr += (tr - inc.atr) / float64(inc.Window)
	}
	inc.count++

	if inc.count < inc.Window {
		inc.value = math.NaN()
	} else {
		inc.value = inc.atr
	}

	return inc.value
}

func (inc *ATR) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *ATR) Value() float64 {
	return inc.value
}

func (inc *ATR) Ready() bool {
	return inc.count >= inc.Window
}

func (inc *ATR) UpdateCount() int {
	return inc.updateCount
}

func (inc *ATR) Outputs() map[string]float64 {
	return map[string]float64{"atr": inc.value}
}

func (inc *ATR) Reset() {
	inc.atr = 0
	inc.prevClose = 0
	inc.count = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*ATR)(nil)
