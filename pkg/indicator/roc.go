package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// ROC is the streaming rate of change: percent change of the value versus
// the oldest value retained in the window. A zero reference yields 0.
type ROC struct {
	Window int

	rawValues   *types.Queue
	value       float64
	updateCount int
}

func NewROC(window int) (*ROC, error) {
	if window <= 0 {
		return nil, errors.Errorf("roc: window must be greater than 0, got %d", window)
	}

	return &ROC{
		Window:    window,
		rawValues: types.NewQueue(window),
		value:     math.NaN(),
	}, nil
}

func (inc *ROC) Update(value float64) float64 {
	inc.updateCount++
	inc.rawValues.Update(value)

	if !inc.rawValues.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	oldest := inc.rawValues.At(0)
	if oldest != 0.0 {
		inc.value = (value - oldest) / oldest * 100.0
	} else {
		inc.value = 0.0
	}
	return inc.value
}

func (inc *ROC) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *ROC) Value() float64 {
	return inc.value
}

func (inc *ROC) Ready() bool {
	return inc.rawValues.Full()
}

func (inc *ROC) UpdateCount() int {
	return inc.updateCount
}

func (inc *ROC) Outputs() map[string]float64 {
	return map[string]float64{"roc": inc.value}
}

func (inc *ROC) Reset() {
	inc.rawValues.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*ROC)(nil)
