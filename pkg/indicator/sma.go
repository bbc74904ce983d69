package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// SMA is the streaming simple moving average.
// Refer: https://www.investopedia.com/terms/s/sma.asp
type SMA struct {
	Window int

	rawValues   *types.Queue
	sum         float64
	value       float64
	updateCount int
}

func NewSMA(window int) (*SMA, error) {
	if window <= 0 {
		return nil, errors.Errorf("sma: window must be greater than 0, got %d", window)
	}

	return &SMA{
		Window:    window,
		rawValues: types.NewQueue(window),
		value:     math.NaN(),
	}, nil
}

// Update pushes one value and returns the current average, NaN until the
// window is filled. The running sum is maintained with an add/evict
// adjustment, so a full update is O(1).
func (inc *SMA) Update(value float64) float64 {
	inc.updateCount++

	if inc.rawValues.Full() {
		inc.sum -= inc.rawValues.At(0)
	}
	inc.rawValues.Update(value)
	inc.sum += value

	if !inc.rawValues.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	inc.value = inc.sum / float64(inc.Window)
	return inc.value
}

func (inc *SMA) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *SMA) Value() float64 {
	return inc.value
}

func (inc *SMA) Ready() bool {
	return inc.rawValues.Full()
}

func (inc *SMA) UpdateCount() int {
	return inc.updateCount
}

func (inc *SMA) Outputs() map[string]float64 {
	return map[string]float64{"sma": inc.value}
}

func (inc *SMA) Reset() {
	inc.rawValues.Clear()
	inc.sum = 0.0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*SMA)(nil)
