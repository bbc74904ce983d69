package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// UltimateOscillator is the streaming ultimate oscillator: buying pressure
// over true range averaged across three nested periods, weighted 4/2/1.
// The first bar seeds buying pressure with close-low and true range with
// high-low.
// Refer: https://www.investopedia.com/terms/u/ultimateoscillator.asp
type UltimateOscillator struct {
	Period1 int
	Period2 int
	Period3 int

	bp *types.Queue
	tr *types.Queue

	prevClose float64

	value       float64
	updateCount int
}

func NewUltimateOscillator(period1, period2, period3 int) (*UltimateOscillator, error) {
	if period1 <= 0 || period2 <= 0 || period3 <= 0 {
		return nil, errors.Errorf("uo: periods must be greater than 0, got %d/%d/%d",
			period1, period2, period3)
	}
	if period1 >= period2 || period2 >= period3 {
		return nil, errors.Errorf("uo: periods must be strictly increasing, got %d/%d/%d",
			period1, period2, period3)
	}

	return &UltimateOscillator{
		Period1:   period1,
		Period2:   period2,
		Period3:   period3,
		bp:        types.NewQueue(period3),
		tr:        types.NewQueue(period3),
		prevClose: math.NaN(),
		value:     math.NaN(),
	}, nil
}

func (inc *UltimateOscillator) Update(high, low, close float64) float64 {
	inc.updateCount++

	var bp, tr float64
	if !math.IsNaN(inc.prevClose) {
		bp = close - math.Min(low, inc.prevClose)
		tr = trueRange(high, low, inc.prevClose)
	} else {
		bp = close - low
		tr = high - low
	}

	inc.bp.Update(bp)
	inc.tr.Update(tr)
	inc.prevClose = close

	if !inc.bp.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	tailRatio := func(period int) float64 {
		var bpSum, trSum float64
		for i := 0; i < period; i++ {
			bpSum += inc.bp.Index(i)
			trSum += inc.tr.Index(i)
		}
		return bpSum / trSum
	}

	avg1 := tailRatio(inc.Period1)
	avg2 := tailRatio(inc.Period2)
	avg3 := tailRatio(inc.Period3)

	inc.value = 100.0 * (4.0*avg1 + 2.0*avg2 + avg3) / 7.0
	return inc.value
}

func (inc *UltimateOscillator) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *UltimateOscillator) Value() float64 {
	return inc.value
}

func (inc *UltimateOscillator) Ready() bool {
	return inc.bp.Full()
}

func (inc *UltimateOscillator) UpdateCount() int {
	return inc.updateCount
}

func (inc *UltimateOscillator) Outputs() map[string]float64 {
	return map[string]float64{"uo": inc.value}
}

func (inc *UltimateOscillator) Reset() {
	inc.bp.Clear()
	inc.tr.Clear()
	inc.prevClose = math.NaN()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*UltimateOscillator)(nil)
