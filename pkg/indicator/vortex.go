package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// VortexValue is one vortex indicator output.
type VortexValue struct {
	Plus  float64
	Minus float64
}

// Vortex is the streaming vortex indicator: window sums of the +VM/-VM
// movements divided by the window sum of true ranges.
// Refer: https://www.investopedia.com/terms/v/vortex-indicator-vi.asp
type Vortex struct {
	Window int

	vmPlus  *types.Queue
	vmMinus *types.Queue
	tr      *types.Queue

	prevHigh, prevLow, prevClose float64

	value       VortexValue
	updateCount int
}

func NewVortex(window int) (*Vortex, error) {
	if window <= 0 {
		return nil, errors.Errorf("vortex: window must be greater than 0, got %d", window)
	}

	inc := &Vortex{
		Window:  window,
		vmPlus:  types.NewQueue(window),
		vmMinus: types.NewQueue(window),
		tr:      types.NewQueue(window),
	}
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.prevClose = math.NaN()
	inc.value = VortexValue{Plus: math.NaN(), Minus: math.NaN()}
	return inc, nil
}

func (inc *Vortex) Update(high, low, close float64) VortexValue {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevHigh, inc.prevLow, inc.prevClose = high, low, close
		inc.value = VortexValue{Plus: math.NaN(), Minus: math.NaN()}
		return inc.value
	}

	inc.vmPlus.Update(math.Abs(high - inc.prevLow))
	inc.vmMinus.Update(math.Abs(low - inc.prevHigh))
	inc.tr.Update(trueRange(high, low, inc.prevClose))

	inc.prevHigh, inc.prevLow, inc.prevClose = high, low, close

	if !inc.tr.Full() {
		inc.value = VortexValue{Plus: math.NaN(), Minus: math.NaN()}
		return inc.value
	}

	sumTR := inc.tr.Sum()
	if sumTR <= 0.0 {
		inc.value = VortexValue{Plus: math.NaN(), Minus: math.NaN()}
		return inc.value
	}

	inc.value = VortexValue{
		Plus:  inc.vmPlus.Sum() / sumTR,
		Minus: inc.vmMinus.Sum() / sumTR,
	}
	return inc.value
}

func (inc *Vortex) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *Vortex) Value() float64 {
	return inc.value.Plus
}

func (inc *Vortex) Ready() bool {
	return !math.IsNaN(inc.value.Plus)
}

func (inc *Vortex) UpdateCount() int {
	return inc.updateCount
}

func (inc *Vortex) Outputs() map[string]float64 {
	return map[string]float64{
		"vi_plus":  inc.value.Plus,
		"vi_minus": inc.value.Minus,
	}
}

func (inc *Vortex) Reset() {
	inc.vmPlus.Clear()
	inc.vmMinus.Clear()
	inc.tr.Clear()
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.prevClose = math.NaN()
	inc.value = VortexValue{Plus: math.NaN(), Minus: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*Vortex)(nil)
