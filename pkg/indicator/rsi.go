package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// RSI is the streaming relative strength index on Wilder-smoothed average
// gain and loss. The averages are seeded with the first price change, so
// state is just the two smoothed values and the previous close.
//
// Edge behavior: a window with no losses (including a completely flat
// window) yields 100, matching avgLoss == 0.
// Refer: https://www.investopedia.com/terms/r/rsi.asp
type RSI struct {
	Window int

	alpha     float64
	prevClose float64
	avgGain   float64
	avgLoss   float64

	value       float64
	updateCount int
}

func NewRSI(window int) (*RSI, error) {
	if window <= 0 {
		return nil, errors.Errorf("rsi: window must be greater than 0, got %d", window)
	}

	inc := &RSI{
		Window: window,
		alpha:  1.0 / float64(window),
	}
	inc.Reset()
	return inc, nil
}

func (inc *RSI) Update(value float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevClose = value
		inc.value = math.NaN()
		return inc.value
	}

	change := value - inc.prevClose
	var gain, loss float64
	if change > 0.0 {
		gain = change
	} else {
		loss = -change
	}

	if math.IsNaN(inc.avgGain) {
		inc.avgGain = gain
		inc.avgLoss = loss
	} else {
		inc.avgGain = inc.alpha*gain + (1.0-inc.alpha)*inc.avgGain
		inc.avgLoss = inc.alpha*loss + (1.0-inc.alpha)*inc.avgLoss
	}

	rsi := 100.0
	if inc.avgLoss != 0.0 {
		rs := inc.avgGain / inc.avgLoss
		rsi = 100.0 - (100.0 / (1.0 + rs))
	}

	inc.prevClose = value

	if inc.updateCount >= inc.Window {
		inc.value = rsi
	} else {
		inc.value = math.NaN()
	}
	return inc.value
}

func (inc *RSI) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *RSI) Value() float64 {
	return inc.value
}

func (inc *RSI) Ready() bool {
	return inc.updateCount >= inc.Window
}

func (inc *RSI) UpdateCount() int {
	return inc.updateCount
}

func (inc *RSI) Outputs() map[string]float64 {
	return map[string]float64{"rsi": inc.value}
}

func (inc *RSI) Reset() {
	inc.prevClose = math.NaN()
	inc.avgGain = math.NaN()
	inc.avgLoss = math.NaN()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*RSI)(nil)
