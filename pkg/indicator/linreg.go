package indicator

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/c2quant/tastream/pkg/types"
)

// LinRegSlope is the ordinary least squares slope of the close over the
// window, with bar offsets 0..window-1 as the x axis.
type LinRegSlope struct {
	Window int

	prices *types.Queue
	xs     []float64
	ys     []float64

	value       float64
	updateCount int
}

func NewLinRegSlope(window int) (*LinRegSlope, error) {
	if window <= 1 {
		return nil, errors.Errorf("linregslope: window must be greater than 1, got %d", window)
	}

	xs := make([]float64, window)
	for i := range xs {
		xs[i] = float64(i)
	}

	return &LinRegSlope{
		Window: window,
		prices: types.NewQueue(window),
		xs:     xs,
		ys:     make([]float64, window),
		value:  math.NaN(),
	}, nil
}

func (inc *LinRegSlope) Update(value float64) float64 {
	inc.updateCount++
	inc.prices.Update(value)

	if !inc.prices.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	for i := 0; i < inc.Window; i++ {
		inc.ys[i] = inc.prices.At(i)
	}

	_, beta := stat.LinearRegression(inc.xs, inc.ys, nil, false)
	inc.value = beta
	return inc.value
}

func (inc *LinRegSlope) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *LinRegSlope) Value() float64 {
	return inc.value
}

func (inc *LinRegSlope) Ready() bool {
	return inc.prices.Full()
}

func (inc *LinRegSlope) UpdateCount() int {
	return inc.updateCount
}

func (inc *LinRegSlope) Outputs() map[string]float64 {
	return map[string]float64{"slope": inc.value}
}

func (inc *LinRegSlope) Reset() {
	inc.prices.Clear()
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*LinRegSlope)(nil)
