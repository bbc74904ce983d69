package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// SharpeRatio is the annualized mean log return in excess of the
// risk-free rate, divided by the annualized sample volatility of the
// window. Bars without a valid log return leave the window untouched,
// and a zero-volatility window yields 0.
type SharpeRatio struct {
	Window              int
	RiskFreeRate        float64
	AnnualizationFactor float64

	returns   *types.Queue
	prevClose float64
	hasPrev   bool

	value       float64
	updateCount int
}

func NewSharpeRatio(window int, riskFreeRate, annualizationFactor float64) (*SharpeRatio, error) {
	if window <= 0 {
		return nil, errors.Errorf("sharpe: window must be greater than 0, got %d", window)
	}
	if annualizationFactor <= 0 {
		return nil, errors.Errorf("sharpe: annualization factor must be greater than 0, got %f", annualizationFactor)
	}

	return &SharpeRatio{
		Window:              window,
		RiskFreeRate:        riskFreeRate,
		AnnualizationFactor: annualizationFactor,
		returns:             types.NewQueue(window),
		value:               math.NaN(),
	}, nil
}

func (inc *SharpeRatio) Update(cls float64) float64 {
	inc.updateCount++

	if !inc.hasPrev {
		inc.prevClose = cls
		inc.hasPrev = true
		inc.value = math.NaN()
		return inc.value
	}

	if inc.prevClose > 0 && cls > 0 {
		inc.returns.Update(math.Log(cls / inc.prevClose))
	}
	inc.prevClose = cls

	if !inc.returns.Full() {
		inc.value = math.NaN()
		return inc.value
	}

	stats := types.QueueStats(inc.returns)
	annualizedReturn := stats.Mean() * inc.AnnualizationFactor
	volatility := stats.SampleStd() * math.Sqrt(inc.AnnualizationFactor)

	if volatility > 0 {
		inc.value = (annualizedReturn - inc.RiskFreeRate) / volatility
	} else {
		inc.value = 0.0
	}

	return inc.value
}

func (inc *SharpeRatio) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *SharpeRatio) Value() float64 {
	return inc.value
}

func (inc *SharpeRatio) Ready() bool {
	return inc.returns.Full()
}

func (inc *SharpeRatio) UpdateCount() int {
	return inc.updateCount
}

func (inc *SharpeRatio) Outputs() map[string]float64 {
	return map[string]float64{"sharpe": inc.value}
}

func (inc *SharpeRatio) Reset() {
	inc.returns.Clear()
	inc.prevClose = 0
	inc.hasPrev = false
	inc.value = math.NaN()
	inc.updateCount = 0
}

var _ Streaming = (*SharpeRatio)(nil)
