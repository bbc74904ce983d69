package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c2quant/tastream/pkg/types"
)

// KeltnerValue is one Keltner channel output.
type KeltnerValue struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// Keltner is the Keltner channel. The default form centers an EMA of the
// close and offsets the bands by Multiplier times ATR. With Original set,
// all three bands are SMAs of typical-price style combinations, matching
// the channel's original definition.
type Keltner struct {
	Window     int
	ATRWindow  int
	Multiplier float64
	Original   bool

	ema *EMA
	atr *ATR

	midSMA   *SMA
	upperSMA *SMA
	lowerSMA *SMA

	value       KeltnerValue
	updateCount int
}

func NewKeltner(window, atrWindow int, multiplier float64, original bool) (*Keltner, error) {
	if window <= 0 || atrWindow <= 0 {
		return nil, errors.Errorf("keltner: windows must be greater than 0, got %d/%d", window, atrWindow)
	}
	if multiplier <= 0 {
		return nil, errors.Errorf("keltner: multiplier must be greater than 0, got %f", multiplier)
	}

	ema, _ := NewEMA(window)
	atr, _ := NewATR(atrWindow)
	midSMA, _ := NewSMA(window)
	upperSMA, _ := NewSMA(window)
	lowerSMA, _ := NewSMA(window)

	return &Keltner{
		Window:     window,
		ATRWindow:  atrWindow,
		Multiplier: multiplier,
		Original:   original,
		ema:        ema,
		atr:        atr,
		midSMA:     midSMA,
		upperSMA:   upperSMA,
		lowerSMA:   lowerSMA,
		value:      KeltnerValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()},
	}, nil
}

func (inc *Keltner) Update(high, low, cls float64) KeltnerValue {
	inc.updateCount++

	if inc.Original {
		mid := inc.midSMA.Update((high + low + cls) / 3.0)
		upper := inc.upperSMA.Update((4.0*high - 2.0*low + cls) / 3.0)
		lower := inc.lowerSMA.Update((-2.0*high + 4.0*low + cls) / 3.0)
		inc.value = KeltnerValue{Upper: upper, Middle: mid, Lower: lower}
		return inc.value
	}

	mid := inc.ema.Update(cls)
	atr := inc.atr.Update(high, low, cls)

	if math.IsNaN(atr) {
		inc.value = KeltnerValue{Upper: math.NaN(), Middle: mid, Lower: math.NaN()}
		return inc.value
	}

	band := inc.Multiplier * atr
	inc.value = KeltnerValue{Upper: mid + band, Middle: mid, Lower: mid - band}
	return inc.value
}

func (inc *Keltner) PushK(k types.KBar) {
	inc.Update(k.High, k.Low, k.Close)
}

func (inc *Keltner) Value() float64 {
	return inc.value.Upper
}

func (inc *Keltner) Ready() bool {
	if inc.Original {
		return inc.midSMA.Ready()
	}
	return inc.atr.Ready()
}

func (inc *Keltner) UpdateCount() int {
	return inc.updateCount
}

func (inc *Keltner) Outputs() map[string]float64 {
	return map[string]float64{
		"upper":  inc.value.Upper,
		"middle": inc.value.Middle,
		"lower":  inc.value.Lower,
	}
}

func (inc *Keltner) Reset() {
	inc.ema.Reset()
	inc.atr.Reset()
	inc.midSMA.Reset()
	inc.upperSMA.Reset()
	inc.lowerSMA.Reset()
	inc.value = KeltnerValue{Upper: math.NaN(), Middle: math.NaN(), Lower: math.NaN()}
	inc.updateCount = 0
}

var _ Streaming = (*Keltner)(nil)
