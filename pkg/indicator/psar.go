package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// PSAR is the streaming parabolic stop-and-reverse. Unlike the windowed
// indicators it carries no buffer: its whole state is the trend direction,
// the extreme point of the current trend and the acceleration factor.
// A price crossing the SAR flips the trend, moves the SAR to the old
// extreme point and restarts the acceleration factor; a new extreme in
// trend direction bumps the factor up to AFMax.
// Refer: https://www.investopedia.com/terms/p/parabolicindicator.asp
type PSAR struct {
	AFStart float64
	AFInc   float64
	AFMax   float64

	upTrend            bool
	accelerationFactor float64
	upTrendHigh        float64
	downTrendLow       float64
	prevSAR            float64
	prevHigh, prevLow  float64

	value       float64
	updateCount int
}

func NewPSAR(afStart, afInc, afMax float64) (*PSAR, error) {
	if afStart <= 0 || afInc <= 0 || afMax <= 0 {
		return nil, errors.Errorf("psar: acceleration factors must be positive, got %f/%f/%f",
			afStart, afInc, afMax)
	}
	if afStart > afMax {
		return nil, errors.Errorf("psar: start factor %f exceeds cap %f", afStart, afMax)
	}

	inc := &PSAR{
		AFStart: afStart,
		AFInc:   afInc,
		AFMax:   afMax,
	}
	inc.Reset()
	return inc, nil
}

func (inc *PSAR) Update(high, low, close float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevSAR = close
		inc.upTrendHigh = high
		inc.downTrendLow = low
		inc.prevHigh, inc.prevLow = high, low
		inc.value = close
		return inc.value
	}

	if inc.updateCount == 2 {
		inc.prevHigh, inc.prevLow = high, low
		inc.value = close
		return inc.value
	}

	var sar float64
	reversal := false

	if inc.upTrend {
		sar = inc.prevSAR + inc.accelerationFactor*(inc.upTrendHigh-inc.prevSAR)

		if low < sar {
			reversal = true
			sar = inc.upTrendHigh
			inc.downTrendLow = low
			inc.accelerationFactor = inc.AFStart
		} else {
			if high > inc.upTrendHigh {
				inc.upTrendHigh = high
				inc.accelerationFactor = math.Min(inc.accelerationFactor+inc.AFInc, inc.AFMax)
			}

			// never place the SAR inside the previous bar's range
			if inc.prevLow < sar {
				sar = inc.prevLow
			}
		}
	} else {
		sar = inc.prevSAR - inc.accelerationFactor*(inc.prevSAR-inc.downTrendLow)

		if high > sar {
			reversal = true
			sar = inc.downTrendLow
			inc.upTrendHigh = high
			inc.accelerationFactor = inc.AFStart
		} else {
			if low < inc.downTrendLow {
				inc.downTrendLow = low
				inc.accelerationFactor = math.Min(inc.accelerationFactor+inc.AFInc, inc.AFMax)
			}

			if inc.prevHigh > sar {
				sar = inc.prevHigh
			}
		}
	}

	inc.upTrend = inc.upTrend != reversal
	inc.prevSAR = sar
	inc.prevHigh, inc.prevLow = high, low

	inc.value = sar
	return inc.value
}

func (inc *PSAR) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

// UpTrend reports the current trend direction.
func (inc *PSAR) UpTrend() bool {
	return inc.upTrend
}

func (inc *PSAR) Value() float64 {
	return inc.value
}

func (inc *PSAR) Ready() bool {
	return inc.updateCount > 0
}

func (inc *PSAR) UpdateCount() int {
	return inc.updateCount
}

func (inc *PSAR) Outputs() map[string]float64 {
	return map[string]float64{"psar": inc.value}
}

func (inc *PSAR) Reset() {
	inc.upTrend = true
	inc.accelerationFactor = inc.AFStart
	inc.upTrendHigh = math.NaN()
	inc.downTrendLow = math.NaN()
	inc.prevSAR = math.NaN()
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*PSAR)(nil)
