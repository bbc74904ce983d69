package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// MFI is the money flow index: a volume-weighted RSI over the typical
// price. The first bar has no previous typical price and contributes a
// zero flow to both sides of the window. A window with no negative flow
// saturates at 100.
type MFI struct {
	Window int

	positiveMF *types.Queue
	negativeMF *types.Queue
	prevTP     float64
	hasPrev    bool

	value       float64
	updateCount int
}

func NewMFI(window int) (*MFI, error) {
	if window <= 0 {
		return nil, errors.Errorf("mfi: window must be greater than 0, got %d", window)
	}

	return &MFI{
		Window:     window,
		positiveMF: types.NewQueue(window),
		negativeMF: types.NewQueue(window),
		value:      math.NaN(),
	}, nil
}

func (inc *MFI) Update(high, low, cls, volume float64) float64 {
	inc.updateCount++

	tp := (high + low + cls) / 3.0
	rmf := tp * volume

	var positive, negative float64
	if inc.hasPrev {
		if tp > inc.prevTP {
			positive = rmf
		} else if tp < inc.prevTP {
			negative = rmf
		}
	}

	inc.positiveMF.Update(positive)
	inc.negativeMF.Update(negative)
	inc.prevTP = tp
	inc.hasPrev = true

	if !inc.positiveMF.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	negSum := inc.negativeMF.Sum()
	if negSum == 0 {
		inc.value = 100.0
		return inc.value
	}

	mfr := inc.positiveMF.Sum() / negSum
	inc.value = 100.0 - 100.0/(1.0+mfr)
	return inc.value
}

func (inc *MFI) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close, k.Volume)
}

func (inc *MFI) Value() float64 {
	return inc.value
}

func (inc *MFI) Ready() bool {
	return inc.positiveMF.Full()
}

func (inc *MFI) UpdateCount() int {
	return inc.updateCount
}

func (inc *MFI) Outputs() map[string]float64 {
	return map[string]float64{"mfi": inc.value}
}

func (inc *MFI) Reset() {
	inc.positiveMF.Clear()
	inc.negativeMF.Clear()
	inc.prevTP = 0
	inc.hasPrev = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*MFI)(nil)
