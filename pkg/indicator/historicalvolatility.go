package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

const tradingDaysPerYear = 252.0

// HistoricalVolatility is the sample standard deviation of log returns
// over the window, optionally annualized by sqrt(252), expressed as a
// percentage. Non-positive prices cannot produce a log return; such a
// tick yields NaN and leaves the return window untouched.
type HistoricalVolatility struct {
	Window    int
	Annualize bool

	returns   *types.Queue
	prevClose float64
	hasPrev   bool

	value       float64
	updateCount int
}

func NewHistoricalVolatility(window int, annualize bool) (*HistoricalVolatility, error) {
	if window <= 0 {
		return nil, errors.Errorf("hv: window must be greater than 0, got %d", window)
	}

	return &HistoricalVolatility{
		Window:    window,
		Annualize: annualize,
		returns:   types.NewQueue(window),
		value:     math.NaN(),
	}, nil
}

func (inc *HistoricalVolatility) Update(value float64) float64 {
	inc.updateCount++

	if value <= 0 {
		logger.Debugf("hv: non-positive price %v has no log return, skipping", value)
		inc.value = math.NaN()
		return inc.value
	}

	if !inc.hasPrev {
		inc.prevClose = value
		inc.hasPrev = true
		inc.value = math.NaN()
		return inc.value
	}

	inc.returns.Update(math.Log(value / inc.prevClose))
	inc.prevClose = value

	if !inc.returns.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	stats := types.QueueStats(inc.returns)
	vol := stats.SampleStd()
	if inc.Annualize {
		vol *= math.Sqrt(tradingDaysPerYear)
	}

	inc.value = 100.0 * vol
	return inc.value
}

func (inc *HistoricalVolatility) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *HistoricalVolatility) Value() float64 {
	return inc.value
}

func (inc *HistoricalVolatility) Ready() bool {
	return inc.returns.Full()
}

func (inc *HistoricalVolatility) UpdateCount() int {
	return inc.updateCount
}

func (inc *HistoricalVolatility) Outputs() map[string]float64 {
	return map[string]float64{"hvol": inc.value}
}

func (inc *HistoricalVolatility) Reset() {
	inc.returns.Clear()
	inc.prevClose = 0
	inc.hasPrev = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*HistoricalVolatility)(nil)
