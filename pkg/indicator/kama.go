package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// KAMA is Kaufman's adaptive moving average. The smoothing constant is
// derived from the efficiency ratio over the window, squared, and bounded
// by the fast and slow EMA constants.
type KAMA struct {
	Window     int
	FastWindow int
	SlowWindow int

	prices *types.Queue
	kama   float64
	seeded bool

	value       float64
	updateCount int
}

func NewKAMA(window, fastWindow, slowWindow int) (*KAMA, error) {
	if window <= 0 || fastWindow <= 0 || slowWindow <= 0 {
		return nil, errors.Errorf("kama: windows must be greater than 0, got %d/%d/%d", window, fastWindow, slowWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Errorf("kama: fast window %d must be less than slow window %d", fastWindow, slowWindow)
	}

	return &KAMA{
		Window:     window,
		FastWindow: fastWindow,
		SlowWindow: slowWindow,
		prices:     types.NewQueue(window + 1),
		value:      math.NaN(),
	}, nil
}

func (inc *KAMA) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	if !inc.seeded {
		inc.kama = value
		inc.seeded = true
		inc.value = inc.kama
		return inc.value
	}

	change := math.Abs(value - inc.prices.At(0))
	volatility := 0.0
	for i := 0; i < inc.Window; i++ {
		volatility += math.Abs(inc.prices.At(i+1) - inc.prices.At(i))
	}

	er := 0.0
	if volatility != 0 {
		er = change / volatility
	}

	fastSC := 2.0 / float64(inc.FastWindow+1)
	slowSC := 2.0 / float64(inc.SlowWindow+1)
	sc := er*(fastSC-slowSC) + slowSC
	sc *= sc

	inc.kama += sc * (value - inc.kama)
	inc.value = inc.kama
	return inc.value
}

func (inc *KAMA) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *KAMA) Value() float64 {
	return inc.value
}

func (inc *KAMA) Ready() bool {
	return inc.seeded
}

func (inc *KAMA) UpdateCount() int {
	return inc.updateCount
}

func (inc *KAMA) Outputs() map[string]float64 {
	return map[string]float64{"kama": inc.value}
}

func (inc *KAMA) Reset() {
	inc.prices.Clear()
	inc.kama = 0
	inc.seeded = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*KAMA)(nil)
