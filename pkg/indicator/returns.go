package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// DailyReturn is the bar-over-bar percentage change of the close.
type DailyReturn struct {
	prevClose   float64
	value       float64
	updateCount int
}

func NewDailyReturn() *DailyReturn {
	return &DailyReturn{value: math.NaN()}
}

func (inc *DailyReturn) Update(cls float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevClose = cls
		inc.value = math.NaN()
		return inc.value
	}

	if inc.prevClose != 0 {
		inc.value = (cls - inc.prevClose) / inc.prevClose * 100.0
	} else {
		inc.value = math.NaN()
	}

	inc.prevClose = cls
	return inc.value
}

func (inc *DailyReturn) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *DailyReturn) Value() float64 {
	return inc.value
}

func (inc *DailyReturn) Ready() bool {
	return inc.updateCount > 1
}

func (inc *DailyReturn) UpdateCount() int {
	return inc.updateCount
}

func (inc *DailyReturn) Outputs() map[string]float64 {
	return map[string]float64{"dr": inc.value}
}

func (inc *DailyReturn) Reset() {
	inc.prevClose = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*DailyReturn)(nil)

// DailyLogReturn is the bar-over-bar log return of the close in percent.
// Non-positive prices have no log return and yield NaN for that bar.
type DailyLogReturn struct {
	prevClose   float64
	value       float64
	updateCount int
}

func NewDailyLogReturn() *DailyLogReturn {
	return &DailyLogReturn{value: math.NaN()}
}

func (inc *DailyLogReturn) Update(cls float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevClose = cls
		inc.value = math.NaN()
		return inc.value
	}

	if inc.prevClose > 0 && cls > 0 {
		inc.value = math.Log(cls/inc.prevClose) * 100.0
	} else {
		inc.value = math.NaN()
	}

	inc.prevClose = cls
	return inc.value
}

func (inc *DailyLogReturn) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *DailyLogReturn) Value() float64 {
	return inc.value
}

func (inc *DailyLogReturn) Ready() bool {
	return !math.IsNaN(inc.value)
}

func (inc *DailyLogReturn) UpdateCount() int {
	return inc.updateCount
}

func (inc *DailyLogReturn) Outputs() map[string]float64 {
	return map[string]float64{"dlr": inc.value}
}

func (inc *DailyLogReturn) Reset() {
	inc.prevClose = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*DailyLogReturn)(nil)

// CumulativeReturn is the percentage change against the first observed
// close. The first bar anchors the series and reports 0.
type CumulativeReturn struct {
	initialPrice float64
	value        float64
	updateCount  int
}

func NewCumulativeReturn() *CumulativeReturn {
	return &CumulativeReturn{value: math.NaN()}
}

func (inc *CumulativeReturn) Update(cls float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.initialPrice = cls
		inc.value = 0.0
		return inc.value
	}

	if inc.initialPrice != 0 {
		inc.value = (cls/inc.initialPrice - 1.0) * 100.0
	} else {
		inc.value = math.NaN()
	}

	return inc.value
}

func (inc *CumulativeReturn) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *CumulativeReturn) Value() float64 {
	return inc.value
}

func (inc *CumulativeReturn) Ready() bool {
	return inc.updateCount > 0
}

func (inc *CumulativeReturn) UpdateCount() int {
	return inc.updateCount
}

func (inc *CumulativeReturn) Outputs() map[string]float64 {
	return map[string]float64{"cr": inc.value}
}

func (inc *CumulativeReturn) Reset() {
	inc.initialPrice = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*CumulativeReturn)(nil)

// CompoundLogReturn accumulates log returns and reports the compounded
// percentage growth. Bars with a non-positive close leave the accumulator
// untouched.
type CompoundLogReturn struct {
	cumLogReturn float64
	prevClose    float64
	value        float64
	updateCount  int
}

func NewCompoundLogReturn() *CompoundLogReturn {
	return &CompoundLogReturn{value: math.NaN()}
}

func (inc *CompoundLogReturn) Update(cls float64) float64 {
	inc.updateCount++

	if inc.updateCount == 1 {
		inc.prevClose = cls
		inc.value = 0.0
		return inc.value
	}

	if inc.prevClose > 0 && cls > 0 {
		inc.cumLogReturn += math.Log(cls / inc.prevClose)
	}

	inc.prevClose = cls
	inc.value = (math.Exp(inc.cumLogReturn) - 1.0) * 100.0
	return inc.value
}

func (inc *CompoundLogReturn) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *CompoundLogReturn) Value() float64 {
	return inc.value
}

func (inc *CompoundLogReturn) Ready() bool {
	return inc.updateCount > 0
}

func (inc *CompoundLogReturn) UpdateCount() int {
	return inc.updateCount
}

func (inc *CompoundLogReturn) Outputs() map[string]float64 {
	return map[string]float64{"clr": inc.value}
}

func (inc *CompoundLogReturn) Reset() {
	inc.cumLogReturn = 0
	inc.prevClose = 0
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*CompoundLogReturn)(nil)

// RollingReturn is the percentage change from the oldest to the newest
// close in the window. A zero start price yields 0.
type RollingReturn struct {
	Window int

	prices *types.Queue

	value       float64
	updateCount int
}

func NewRollingReturn(window int) (*RollingReturn, error) {
	if window <= 0 {
		return nil, errors.Errorf("rollingreturn: window must be greater than 0, got %d", window)
	}

	return &RollingReturn{
		Window: window,
		prices: types.NewQueue(window),
		value:  math.NaN(),
	}, nil
}

func (inc *RollingReturn) Update(cls float64) float64 {
	inc.updateCount++
	inc.prices.Update(cls)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	start := inc.prices.At(0)
	if start != 0 {
		inc.value = (cls - start) / start * 100.0
	} else {
		inc.value = 0.0
	}

	return inc.value
}

func (inc *RollingReturn) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *RollingReturn) Value() float64 {
	return inc.value
}

func (inc *RollingReturn) Ready() bool {
	return inc.prices.Full()
}

func (inc *RollingReturn) UpdateCount() int {
	return inc.updateCount
}

func (inc *RollingReturn) Outputs() map[string]float64 {
	return map[string]float64{"rr": inc.value}
}

func (inc *RollingReturn) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*RollingReturn)(nil)
