package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// ADXValue is one ADX output: the average directional index plus the two
// directional indicator lines it is derived from.
type ADXValue struct {
	ADX     float64
	PlusDI  float64
	MinusDI float64
}

// ADX is the streaming average directional index. Directional movement,
// true range and DX are all smoothed with Wilder's recurrence
// s = s + (x-s)/n, seeded with the first observed raw value.
// Refer: https://www.investopedia.com/terms/a/adx.asp
type ADX struct {
	Window int

	alpha float64

	prevHigh, prevLow, prevClose          float64
	smoothedPlusDM, smoothedMinusDM       float64
	smoothedTR, smoothedDX                float64

	value       ADXValue
	updateCount int
}

func NewADX(window int) (*ADX, error) {
	if window <= 0 {
		return nil, errors.Errorf("adx: window must be greater than 0, got %d", window)
	}

	inc := &ADX{
		Window: window,
		alpha:  1.0 / float64(window),
	}
	inc.Reset()
	return inc, nil
}

func (inc *ADX) Update(high, low, close float64) ADXValue {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevHigh, inc.prevLow, inc.prevClose = high, low, close
		inc.value = ADXValue{ADX: math.NaN(), PlusDI: math.NaN(), MinusDI: math.NaN()}
		return inc.value
	}

	highDiff := high - inc.prevHigh
	lowDiff := inc.prevLow - low

	var plusDM, minusDM float64
	if highDiff > lowDiff && highDiff > 0.0 {
		plusDM = highDiff
	}
	if lowDiff > highDiff && lowDiff > 0.0 {
		minusDM = lowDiff
	}

	tr := trueRange(high, low, inc.prevClose)

	if math.IsNaN(inc.smoothedTR) {
		inc.smoothedPlusDM = plusDM
		inc.smoothedMinusDM = minusDM
		inc.smoothedTR = tr
	} else {
		inc.smoothedPlusDM = (1.0-inc.alpha)*inc.smoothedPlusDM + inc.alpha*plusDM
		inc.smoothedMinusDM = (1.0-inc.alpha)*inc.smoothedMinusDM + inc.alpha*minusDM
		inc.smoothedTR = (1.0-inc.alpha)*inc.smoothedTR + inc.alpha*tr
	}

	adx := math.NaN()
	plusDI := math.NaN()
	minusDI := math.NaN()

	if inc.smoothedTR > 0.0 {
		plusDI = 100.0 * inc.smoothedPlusDM / inc.smoothedTR
		minusDI = 100.0 * inc.smoothedMinusDM / inc.smoothedTR

		if diSum := plusDI + minusDI; diSum > 0.0 {
			dx := 100.0 * math.Abs(plusDI-minusDI) / diSum

			if math.IsNaN(inc.smoothedDX) {
				inc.smoothedDX = dx
			} else {
				inc.smoothedDX = (1.0-inc.alpha)*inc.smoothedDX + inc.alpha*dx
			}

			if inc.updateCount >= inc.Window {
				adx = inc.smoothedDX
			}
		}
	}

	inc.prevHigh, inc.prevLow, inc.prevClose = high, low, close
	inc.value = ADXValue{ADX: adx, PlusDI: plusDI, MinusDI: minusDI}
	return inc.value
}

func (inc *ADX) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *ADX) Value() float64 {
	return inc.value.ADX
}

func (inc *ADX) Ready() bool {
	return !math.IsNaN(inc.value.ADX)
}

func (inc *ADX) UpdateCount() int {
	return inc.updateCount
}

func (inc *ADX) Outputs() map[string]float64 {
	return map[string]float64{
		"adx":      inc.value.ADX,
		"plus_di":  inc.value.PlusDI,
		"minus_di": inc.value.MinusDI,
	}
}

func (inc *ADX) Reset() {
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.prevClose = math.NaN()
	inc.smoothedPlusDM = math.NaN()
	inc.smoothedMinusDM = math.NaN()
	inc.smoothedTR = math.NaN()
	inc.smoothedDX = math.NaN()
	inc.value = ADXValue{ADX: math.NaN(), PlusDI: math.NaN(), MinusDI: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*ADX)(nil)
