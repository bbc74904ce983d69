package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// VWAP is the rolling volume weighted average of the typical price. A
// zero-volume window yields 0.
type VWAP struct {
	Window int

	tpv     *types.Queue
	volumes *types.Queue

	value       float64
	updateCount int
}

func NewVWAP(window int) (*VWAP, error) {
	if window <= 0 {
		return nil, errors.Errorf("vwap: window must be greater than 0, got %d", window)
	}

	return &VWAP{
		Window:  window,
		tpv:     types.NewQueue(window),
		volumes: types.NewQueue(window),
		value:   math.NaN(),
	}, nil
}

func (inc *VWAP) Update(high, low, cls, volume float64) float64 {
	inc.updateCount++

	tp := (high + low + cls) / 3.0
	inc.tpv.Update(tp * volume)
	inc.volumes.Update(volume)

	if !inc.tpv.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	volSum := inc.volumes.Sum()
	if volSum == 0 {
		inc.value = 0.0
	} else {
		inc.value = inc.tpv.Sum() / volSum
	}

	return inc.value
}

func (inc *VWAP) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close, k.Volume)
}

func (inc *VWAP) Value() float64 {
	return inc.value
}

func (inc *VWAP) Ready() bool {
	return inc.tpv.Full()
}

func (inc *VWAP) UpdateCount() int {
	return inc.updateCount
}

func (inc *VWAP) Outputs() map[string]float64 {
	return map[string]float64{"vwap": inc.value}
}

func (inc *VWAP) Reset() {
	inc.tpv.Clear()
	inc.volumes.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*VWAP)(nil)
