package indicator

import (
	"github.com/c2quant/tastream/pkg/types"
)

// VPT is the volume price trend line: an unbounded sum of volume scaled
// by the close percentage change. The line starts at zero; a zero
// previous close contributes nothing.
type VPT struct {
	vptLine     float64
	prevClose   float64
	updateCount int
}

func NewVPT() *VPT {
	return &VPT{}
}

func (inc *VPT) Update(cls, volume float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.vptLine = 0
	} else if inc.prevClose != 0 {
		inc.vptLine += volume * (cls - inc.prevClose) / inc.prevClose
	}

	inc.prevClose = cls
	return inc.vptLine
}

func (inc *VPT) PushK(k types.KBar) {
	inc.Update(k.Close, k.Volume)
}

func (inc *VPT) Value() float64 {
	return inc.vptLine
}

func (inc *VPT) Ready() bool {
	return inc.updateCount > 0
}

func (inc *VPT) UpdateCount() int {
	return inc.updateCount
}

func (inc *VPT) Outputs() map[string]float64 {
	return map[string]float64{"vpt": inc.vptLine}
}

func (inc *VPT) Reset() {
	inc.vptLine = 0
	inc.prevClose = 0
	inc.updateCount = 0
}

var _ Streaming = (*VPT)(nil)
