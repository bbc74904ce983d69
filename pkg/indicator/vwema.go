package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// VWEMA smooths a rolling VWAP with an EMA. The EMA sees no input until
// the VWAP window fills, so its seed is the first defined VWAP value.
type VWEMA struct {
	VWAPWindow int
	EMAWindow  int

	vwap *VWAP
	ema  *EMA

	value       float64
	updateCount int
}

func NewVWEMA(vwapWindow, emaWindow int) (*VWEMA, error) {
	if vwapWindow <= 0 || emaWindow <= 0 {
		return nil, errors.Errorf("vwema: windows must be greater than 0, got %d/%d", vwapWindow, emaWindow)
	}

	vwap, _ := NewVWAP(vwapWindow)
	ema, _ := NewEMA(emaWindow)

	return &VWEMA{
		VWAPWindow: vwapWindow,
		EMAWindow:  emaWindow,
		vwap:       vwap,
		ema:        ema,
		value:      math.NaN(),
	}, nil
}

func (inc *VWEMA) Update(high, low, cls, volume float64) float64 {
	inc.updateCount++

	vwap := inc.vwap.Update(high, low, cls, volume)
	if math.IsNaN(vwap) {
		inc.value = math.NaN()
	} else {
		inc.value = inc.ema.Update(vwap)
	}

	return inc.value
}

func (inc *VWEMA) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close, k.Volume)
}

func (inc *VWEMA) Value() float64 {
	return inc.value
}

func (inc *VWEMA) Ready() bool {
	return inc.vwap.Ready()
}

func (inc *VWEMA) UpdateCount() int {
	return inc.updateCount
}

func (inc *VWEMA) Outputs() map[string]float64 {
	return map[string]float64{"vwema": inc.value}
}

func (inc *VWEMA) Reset() {
	inc.vwap.Reset()
	inc.ema.Reset()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*VWEMA)(nil)
