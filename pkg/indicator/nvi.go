package indicator

import (
	"github.com/c2quant/tastream/pkg/types"
)

// NVI is the negative volume index. The line starts at 1000 and compounds
// the close percentage change only on bars where volume shrinks.
type NVI struct {
	nviLine     float64
	prevClose   float64
	prevVolume  float64
	updateCount int
}

func NewNVI() *NVI {
	return &NVI{nviLine: 1000.0}
}

func (inc *NVI) Update(cls, volume float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.nviLine = 1000.0
	} else if volume < inc.prevVolume && inc.prevClose != 0 {
		inc.nviLine *= 1.0 + (cls-inc.prevClose)/inc.prevClose
	}

	inc.prevClose = cls
	inc.prevVolume = volume
	return inc.nviLine
}

func (inc *NVI) PushK(k types.KBar) {
	inc.Update(k.Close, k.Volume)
}

func (inc *NVI) Value() float64 {
	return inc.nviLine
}

func (inc *NVI) Ready() bool {
	return inc.updateCount > 0
}

func (inc *NVI) UpdateCount() int {
	return inc.updateCount
}

func (inc *NVI) Outputs() map[string]float64 {
	return map[string]float64{"nvi": inc.nviLine}
}

func (inc *NVI) Reset() {
	inc.nviLine = 1000.0
	inc.prevClose = 0
	inc.prevVolume = 0
	inc.updateCount = 0
}

var _ Streaming = (*NVI)(nil)
