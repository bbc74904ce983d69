package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// maxDrawdownOver scans the window for the deepest drop below the running
// maximum. The result is a fraction in [-1, 0].
func maxDrawdownOver(prices *types.Queue) float64 {
	runningMax := prices.At(0)
	maxDrawdown := 0.0

	for i := 1; i < prices.Length(); i++ {
		p := prices.At(i)
		if p > runningMax {
			runningMax = p
		}
		dd := (p - runningMax) / runningMax
		if dd < maxDrawdown {
			maxDrawdown = dd
		}
	}

	return maxDrawdown
}

// MaxDrawdown is the deepest percentage drop from a running high inside
// the window. Reported as a non-positive percentage once two closes have
// been seen.
type MaxDrawdown struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewMaxDrawdown(window int) (*MaxDrawdown, error) {
	if window <= 0 {
		return nil, errors.Errorf("maxdrawdown: window must be greater than 0, got %d", window)
	}

	return &MaxDrawdown{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *MaxDrawdown) Update(cls float64) float64 {
	inc.updateCount++
	inc.prices.Update(cls)

	if inc.prices.Length() < 2 {
		inc.value = math.NaN()
		return inc.value
	}

	inc.value = maxDrawdownOver(inc.prices) * 100.0
	return inc.value
}

func (inc *MaxDrawdown) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *MaxDrawdown) Value() float64 {
	return inc.value
}

func (inc *MaxDrawdown) Ready() bool {
	return inc.prices.Length() >= 2
}

func (inc *MaxDrawdown) UpdateCount() int {
	return inc.updateCount
}

func (inc *MaxDrawdown) Outputs() map[string]float64 {
	return map[string]float64{"mdd": inc.value}
}

func (inc *MaxDrawdown) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*MaxDrawdown)(nil)

// CalmarRatio divides the annualized window return by the absolute
// maximum drawdown over the same window. A flat window with no drawdown
// yields 0.
type CalmarRatio struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewCalmarRatio(window int) (*CalmarRatio, error) {
	if window <= 0 {
		return nil, errors.Errorf("calmar: window must be greater than 0, got %d", window)
	}

	return &CalmarRatio{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *CalmarRatio) Update(cls float64) float64 {
	inc.updateCount++
	inc.prices.Update(cls)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	totalReturn := cls/inc.prices.At(0) - 1.0
	annualReturn := totalReturn * (tradingDaysPerYear / float64(inc.prices.Length()))

	maxDrawdown := math.Abs(maxDrawdownOver(inc.prices))
	if maxDrawdown > 0 {
		inc.value = annualReturn / maxDrawdown
	} else {
		inc.value = 0.0
	}

	return inc.value
}

func (inc *CalmarRatio) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *CalmarRatio) Value() float64 {
	return inc.value
}

func (inc *CalmarRatio) Ready() bool {
	return inc.prices.Full()
}

func (inc *CalmarRatio) UpdateCount() int {
	return inc.updateCount
}

func (inc *CalmarRatio) Outputs() map[string]float64 {
	return map[string]float64{"calmar": inc.value}
}

func (inc *CalmarRatio) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*CalmarRatio)(nil)
