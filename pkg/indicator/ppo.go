package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// PPOValue is one percentage price oscillator output.
type PPOValue struct {
	PPO       float64
	Signal    float64
	Histogram float64
}

// PPO is the streaming percentage price oscillator: MACD normalized by the
// slow EMA, in percent. A zero slow EMA yields NaN for that tick.
type PPO struct {
	FastWindow   int
	SlowWindow   int
	SignalWindow int

	fastEMA, slowEMA, signalEMA *EMA

	value       PPOValue
	updateCount int
}

func NewPPO(fastWindow, slowWindow, signalWindow int) (*PPO, error) {
	if fastWindow <= 0 || slowWindow <= 0 || signalWindow <= 0 {
		return nil, errors.Errorf("ppo: windows must be greater than 0, got %d/%d/%d",
			fastWindow, slowWindow, signalWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Errorf("ppo: fast window %d must be shorter than slow window %d",
			fastWindow, slowWindow)
	}

	fastEMA, _ := NewEMA(fastWindow)
	slowEMA, _ := NewEMA(slowWindow)
	signalEMA, _ := NewEMA(signalWindow)

	return &PPO{
		FastWindow:   fastWindow,
		SlowWindow:   slowWindow,
		SignalWindow: signalWindow,
		fastEMA:      fastEMA,
		slowEMA:      slowEMA,
		signalEMA:    signalEMA,
		value:        PPOValue{PPO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()},
	}, nil
}

func (inc *PPO) Update(value float64) PPOValue {
	inc.updateCount++

	fast := inc.fastEMA.Update(value)
	slow := inc.slowEMA.Update(value)

	if math.IsNaN(fast) || math.IsNaN(slow) || slow == 0.0 {
		inc.value = PPOValue{PPO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
		return inc.value
	}

	ppo := (fast - slow) / slow * 100.0
	signal := inc.signalEMA.Update(ppo)
	histogram := math.NaN()
	if !math.IsNaN(signal) {
		histogram = ppo - signal
	}

	inc.value = PPOValue{PPO: ppo, Signal: signal, Histogram: histogram}
	return inc.value
}

func (inc *PPO) PushK(k types.KBar) {
	inc.Update(k.Close)
}

func (inc *PPO) Value() float64 {
	return inc.value.PPO
}

func (inc *PPO) Ready() bool {
	return !math.IsNaN(inc.value.PPO)
}

func (inc *PPO) UpdateCount() int {
	return inc.updateCount
}

func (inc *PPO) Outputs() map[string]float64 {
	return map[string]float64{
		"ppo":       inc.value.PPO,
		"signal":    inc.value.Signal,
		"histogram": inc.value.Histogram,
	}
}

func (inc *PPO) Reset() {
	inc.fastEMA.Reset()
	inc.slowEMA.Reset()
	inc.signalEMA.Reset()
	inc.value = PPOValue{PPO: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*PPO)(nil)
