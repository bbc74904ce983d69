package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// CCI is the streaming commodity channel index: the deviation of the
// typical price from its window SMA, scaled by the window's mean absolute
// deviation. A zero deviation window yields 0.
// Refer: https://www.investopedia.com/terms/c/commoditychannelindex.asp
type CCI struct {
	Window   int
	Constant float64

	typicalPrices *types.Queue
	value         float64
	updateCount   int
}

func NewCCI(window int, constant float64) (*CCI, error) {
	if window <= 0 {
		return nil, errors.Errorf("cci: window must be greater than 0, got %d", window)
	}
	if constant <= 0 {
		return nil, errors.Errorf("cci: constant must be positive, got %f", constant)
	}

	return &CCI{
		Window:        window,
		Constant:      constant,
		typicalPrices: types.NewQueue(window),
		value:         math.NaN(),
	}, nil
}

func (inc *CCI) Update(high, low, close float64) float64 {
	inc.updateCount++

	tp := (high + low + close) / 3.0
	inc.typicalPrices.Update(tp)

	if !inc.typicalPrices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	sma := inc.typicalPrices.Mean()
	var mad float64
	for i := 0; i < inc.Window; i++ {
		mad += math.Abs(inc.typicalPrices.At(i) - sma)
	}
	mad /= float64(inc.Window)

	if mad == 0.0 {
		inc.value = 0.0
	} else {
		inc.value = (tp - sma) / (inc.Constant * mad)
	}
	return inc.value
}

func (inc *CCI) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *CCI) Value() float64 {
	return inc.value
}

func (inc *CCI) Ready() bool {
	return inc.typicalPrices.Full()
}

func (inc *CCI) UpdateCount() int {
	return inc.updateCount
}

func (inc *CCI) Outputs() map[string]float64 {
	return map[string]float64{"cci": inc.value}
}

func (inc *CCI) Reset() {
	inc.typicalPrices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*CCI)(nil)
