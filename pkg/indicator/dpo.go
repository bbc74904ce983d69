package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// DPO is the streaming detrended price oscillator: the close from
// window/2+1 bars back minus the current window SMA.
type DPO struct {
	Window int

	displacement int
	sma          *SMA
	prices       *types.Queue
	value        float64
	updateCount  int
}

func NewDPO(window int) (*DPO, error) {
	if window <= 0 {
		return nil, errors.Errorf("dpo: window must be greater than 0, got %d", window)
	}

	sma, _ := NewSMA(window)
	return &DPO{
		Window:       window,
		displacement: window/2 + 1,
		sma:          sma,
		prices:       types.NewQueue(window),
		value:        math.NaN(),
	}, nil
}

func (inc *DPO) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	sma := inc.sma.Update(value)

	if inc.prices.Length() >= inc.displacement && !math.IsNaN(sma) {
		displaced := inc.prices.At(inc.prices.Length() - inc.displacement)
		inc.value = displaced - sma
	} else {
		inc.value = math.NaN()
	}
	return inc.value
}

func (inc *DPO) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *DPO) Value() float64 {
	return inc.value
}

func (inc *DPO) Ready() bool {
	return inc.sma.Ready()
}

func (inc *DPO) UpdateCount() int {
	return inc.updateCount
}

func (inc *DPO) Outputs() map[string]float64 {
	return map[string]float64{"dpo": inc.value}
}

func (inc *DPO) Reset() {
	inc.sma.Reset()
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*DPO)(nil)
