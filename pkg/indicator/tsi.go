package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// TSI is the true strength index: double EMA smoothing of price changes
// divided by double EMA smoothing of absolute price changes, scaled to
// a percentage.
type TSI struct {
	SlowWindow int
	FastWindow int

	pcSlow     *EMA
	pcFast     *EMA
	absPcSlow  *EMA
	absPcFast  *EMA
	prevClose  float64
	hasPrev    bool

	value       float64
	updateCount int
}

func NewTSI(slowWindow, fastWindow int) (*TSI, error) {
	if slowWindow <= 0 || fastWindow <= 0 {
		return nil, errors.Errorf("tsi: windows must be greater than 0, got %d/%d", slowWindow, fastWindow)
	}

	pcSlow, _ := NewEMA(slowWindow)
	pcFast, _ := NewEMA(fastWindow)
	absPcSlow, _ := NewEMA(slowWindow)
	absPcFast, _ := NewEMA(fastWindow)

	return &TSI{
		SlowWindow: slowWindow,
		FastWindow: fastWindow,
		pcSlow:     pcSlow,
		pcFast:     pcFast,
		absPcSlow:  absPcSlow,
		absPcFast:  absPcFast,
		value:      math.NaN(),
	}, nil
}

func (inc *TSI) Update(value float64) float64 {
	inc.updateCount++

	if !inc.hasPrev {
		inc.prevClose = value
		inc.hasPrev = true
		inc.value = math.NaN()
		return inc.value
	}

	pc := value - inc.prevClose
	inc.prevClose = value

	smoothed := inc.pcFast.Update(inc.pcSlow.Update(pc))
	absSmoothed := inc.absPcFast.Update(inc.absPcSlow.Update(math.Abs(pc)))

	if absSmoothed == 0 {
		inc.value = math.NaN()
	} else {
		inc.value = 100.0 * smoothed / absSmoothed
	}

	return inc.value
}

func (inc *TSI) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *TSI) Value() float64 {
	return inc.value
}

func (inc *TSI) Ready() bool {
	return !math.IsNaN(inc.value)
}

func (inc *TSI) UpdateCount() int {
	return inc.updateCount
}

func (inc *TSI) Outputs() map[string]float64 {
	return map[string]float64{"tsi": inc.value}
}

func (inc *TSI) Reset() {
	inc.pcSlow.Reset()
	inc.pcFast.Reset()
	inc.absPcSlow.Reset()
	inc.absPcFast.Reset()
	inc.prevClose = 0
	inc.hasPrev = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*TSI)(nil)
