package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// EOM is ease of movement: midpoint move times box height over volume,
// scaled by 1e8. The first bar has no midpoint move and a zero-volume bar
// has no defined box ratio; both yield NaN.
type EOM struct {
	Window int

	prevHigh float64
	prevLow  float64

	value       float64
	updateCount int
}

func NewEOM(window int) (*EOM, error) {
	if window <= 0 {
		return nil, errors.Errorf("eom: window must be greater than 0, got %d", window)
	}

	return &EOM{
		Window: window,
		value:  math.NaN(),
	}, nil
}

func (inc *EOM) Update(high, low, volume float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevHigh = high
		inc.prevLow = low
		inc.value = math.NaN()
		return inc.value
	}

	if volume != 0 {
		distanceMoved := ((high - inc.prevHigh) + (low - inc.prevLow)) / 2.0
		boxHeight := high - low
		inc.value = distanceMoved * boxHeight / volume * 100000000.0
	} else {
		inc.value = math.NaN()
	}

	inc.prevHigh = high
	inc.prevLow = low
	return inc.value
}

func (inc *EOM) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Volume)
}

func (inc *EOM) Value() float64 {
	return inc.value
}

func (inc *EOM) Ready() bool {
	return !math.IsNaN(inc.value)
}

func (inc *EOM) UpdateCount() int {
	return inc.updateCount
}

func (inc *EOM) Outputs() map[string]float64 {
	return map[string]float64{"eom": inc.value}
}

func (inc *EOM) Reset() {
	inc.prevHigh = 0
	inc.prevLow = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*EOM)(nil)
