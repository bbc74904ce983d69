package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// VolumeRatio is the current volume relative to its SMA over the window.
// A zero average yields NaN.
type VolumeRatio struct {
	Window int

	sma *SMA

	value       float64
	updateCount int
}

func NewVolumeRatio(window int) (*VolumeRatio, error) {
	if window <= 0 {
		return nil, errors.Errorf("volumeratio: window must be greater than 0, got %d", window)
	}

	sma, _ := NewSMA(window)

	return &VolumeRatio{
		Window: window,
		sma:    sma,
		value:  math.NaN(),
	}, nil
}

func (inc *VolumeRatio) Update(volume float64) float64 {
	inc.updateCount++

	avg := inc.sma.Update(volume)
	if math.IsNaN(avg) || avg == 0 {
		inc.value = math.NaN()
	} else {
		inc.value = volume / avg
	}

	return inc.value
}

func (inc *VolumeRatio) PushK(k types.KBar) {
	inc.Update(k.Volume)
}

func (inc *VolumeRatio) Value() float64 {
	return inc.value
}

func (inc *VolumeRatio) Ready() bool {
	return !math.IsNaN(inc.value)
}

func (inc *VolumeRatio) UpdateCount() int {
	return inc.updateCount
}

func (inc *VolumeRatio) Outputs() map[string]float64 {
	return map[string]float64{"volume_ratio": inc.value}
}

func (inc *VolumeRatio) Reset() {
	inc.sma.Reset()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*VolumeRatio)(nil)
