package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// CMF is Chaikin money flow: the window sum of money flow volume over the
// window sum of volume. A zero-volume window yields 0.
type CMF struct {
	Window int

	mfv     *types.Queue
	volumes *types.Queue

	value       float64
	updateCount int
}

func NewCMF(window int) (*CMF, error) {
	if window <= 0 {
		return nil, errors.Errorf("cmf: window must be greater than 0, got %d", window)
	}

	return &CMF{
		Window:  window,
		mfv:     types.NewQueue(window),
		volumes: types.NewQueue(window),
		value:   math.NaN(),
	}, nil
}

func (inc *CMF) Update(high, low, cls, volume float64) float64 {
	inc.updateCount++

	mfm := 0.0
	if high != low {
		mfm = ((cls - low) - (high - cls)) / (high - low)
	}

	inc.mfv.Update(mfm * volume)
	inc.volumes.Update(volume)

	if !inc.mfv.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	volSum := inc.volumes.Sum()
	if volSum == 0 {
		inc.value = 0.0
	} else {
		inc.value = inc.mfv.Sum() / volSum
	}

	return inc.value
}

func (inc *CMF) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close, k.Volume)
}

func (inc *CMF) Value() float64 {
	return inc.value
}

func (inc *CMF) Ready() bool {
	return inc.mfv.Full()
}

func (inc *CMF) UpdateCount() int {
	return inc.updateCount
}

func (inc *CMF) Outputs() map[string]float64 {
	return map[string]float64{"cmf": inc.value}
}

func (inc *CMF) Reset() {
	inc.mfv.Clear()
	inc.volumes.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*CMF)(nil)
