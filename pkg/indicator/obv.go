package indicator

import (
	"github.com/c2quant/tastream/pkg/types"
)

// OBV is on-balance volume. The line starts at the first bar's volume and
// then adds or subtracts each bar's volume by close direction; a flat
// close leaves it unchanged.
type OBV struct {
	obvLine     float64
	prevClose   float64
	updateCount int
}

func NewOBV() *OBV {
	return &OBV{}
}

func (inc *OBV) Update(cls, volume float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.obvLine = volume
	} else if cls > inc.prevClose {
		inc.obvLine += volume
	} else if cls < inc.prevClose {
		inc.obvLine -= volume
	}

	inc.prevClose = cls
	return inc.obvLine
}

func (inc *OBV) PushK(k types.KBar) {
	inc.Update(k.Close, k.Volume)
}

func (inc *OBV) Value() float64 {
	return inc.obvLine
}

func (inc *OBV) Ready() bool {
	return inc.updateCount > 0
}

func (inc *OBV) UpdateCount() int {
	return inc.updateCount
}

func (inc *OBV) Outputs() map[string]float64 {
	return map[string]float64{"obv": inc.obvLine}
}

func (inc *OBV) Reset() {
	inc.obvLine = 0
	inc.prevClose = 0
	inc.updateCount = 0
}

var _ Streaming = (*OBV)(nil)
