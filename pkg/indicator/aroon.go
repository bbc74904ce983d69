package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// AroonValue is one aroon indicator output.
type AroonValue struct {
	Up   float64
	Down float64
}

// Aroon measures how many bars have passed since the window high and the
// window low. The lookback spans window+1 bars so a high exactly `window`
// bars ago still scores 0. Ties resolve to the most recent extreme.
// Refer: https://www.investopedia.com/terms/a/aroon.asp
type Aroon struct {
	Window int

	highs *types.MinMaxQueue
	lows  *types.MinMaxQueue

	value       AroonValue
	updateCount int
}

func NewAroon(window int) (*Aroon, error) {
	if window <= 0 {
		return nil, errors.Errorf("aroon: window must be greater than 0, got %d", window)
	}

	return &Aroon{
		Window: window,
		highs:  types.NewMinMaxQueue(window + 1),
		lows:   types.NewMinMaxQueue(window + 1),
		value:  AroonValue{Up: math.NaN(), Down: math.NaN()},
	}, nil
}

func (inc *Aroon) Update(high, low float64) AroonValue {
	inc.updateCount++

	inc.highs.Update(high)
	inc.lows.Update(low)

	if !inc.highs.Full() {
		inc.value = AroonValue{Up: math.NaN(), Down: math.NaN()}
		return inc.value
	}

	w := float64(inc.Window)
	inc.value = AroonValue{
		Up:   (w - float64(inc.highs.SinceMax())) / w * 100.0,
		Down: (w - float64(inc.lows.SinceMin())) / w * 100.0,
	}
	return inc.value
}

func (inc *Aroon) PushK(k types.KBar) {
	inc.Update(k.High, k.Low)
}

func (inc *Aroon) Value() float64 {
	return inc.value.Up
}

func (inc *Aroon) Ready() bool {
	return inc.highs.Full()
}

func (inc *Aroon) UpdateCount() int {
	return inc.updateCount
}

func (inc *Aroon) Outputs() map[string]float64 {
	return map[string]float64{
		"aroon_up":   inc.value.Up,
		"aroon_down": inc.value.Down,
	}
}

func (inc *Aroon) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.value = AroonValue{Up: math.NaN(), Down: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*Aroon)(nil)
