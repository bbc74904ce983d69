package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOBV(t *testing.T) {
	obv := NewOBV()

	// starts at the first bar's volume
	assert.InDelta(t, 1000.0, obv.Update(100.0, 1000.0), 1e-9)
	// up close adds
	assert.InDelta(t, 1500.0, obv.Update(101.0, 500.0), 1e-9)
	// down close subtracts
	assert.InDelta(t, 1300.0, obv.Update(100.5, 200.0), 1e-9)
	// flat close keeps the line
	assert.InDelta(t, 1300.0, obv.Update(100.5, 900.0), 1e-9)

	assert.True(t, obv.Ready())
	assert.Equal(t, 4, obv.UpdateCount())
}

func TestAccDist(t *testing.T) {
	ad := NewAccDist()

	// close at the high moves the whole volume in
	assert.InDelta(t, 500.0, ad.Update(110.0, 100.0, 110.0, 500.0), 1e-9)
	// close at the low moves the whole volume out
	assert.InDelta(t, 200.0, ad.Update(110.0, 100.0, 100.0, 300.0), 1e-9)
	// a degenerate bar contributes nothing
	assert.InDelta(t, 200.0, ad.Update(100.0, 100.0, 100.0, 900.0), 1e-9)
}

func TestMFIRange(t *testing.T) {
	mfi, err := NewMFI(14)
	require.NoError(t, err)

	for _, b := range testBars(150, 41) {
		v := mfi.Update(b.High, b.Low, b.Close, b.Volume)
		if mfi.Ready() {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestMFIAllRising(t *testing.T) {
	mfi, err := NewMFI(5)
	require.NoError(t, err)

	price := 100.0
	var v float64
	for i := 0; i < 10; i++ {
		price += 1.0
		v = mfi.Update(price+1, price-1, price, 1000.0)
	}

	// no negative flow in the window saturates the index
	assert.InDelta(t, 100.0, v, 1e-9)
}

func TestCMFBounds(t *testing.T) {
	cmf, err := NewCMF(20)
	require.NoError(t, err)

	for _, b := range testBars(150, 43) {
		v := cmf.Update(b.High, b.Low, b.Close, b.Volume)
		if cmf.Ready() {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestVWAPWithinRange(t *testing.T) {
	vwap, err := NewVWAP(14)
	require.NoError(t, err)

	bars := testBars(100, 47)
	for i, b := range bars {
		v := vwap.Update(b.High, b.Low, b.Close, b.Volume)
		if i < 13 {
			continue
		}

		// volume-weighted typical price stays inside the window's
		// typical price extremes
		minTP := math.Inf(1)
		maxTP := math.Inf(-1)
		for _, w := range bars[i-13 : i+1] {
			tp := w.TypicalPrice()
			minTP = math.Min(minTP, tp)
			maxTP = math.Max(maxTP, tp)
		}

		assert.GreaterOrEqual(t, v, minTP-1e-9)
		assert.LessOrEqual(t, v, maxTP+1e-9)
	}
}

func TestNVIBase(t *testing.T) {
	nvi := NewNVI()

	assert.InDelta(t, 1000.0, nvi.Update(100.0, 5000.0), 1e-9)
	// rising volume leaves the line untouched
	assert.InDelta(t, 1000.0, nvi.Update(110.0, 6000.0), 1e-9)
	// falling volume compounds the close change
	assert.InDelta(t, 1000.0*(1.0+10.0/110.0), nvi.Update(120.0, 4000.0), 1e-9)
}

func TestVPT(t *testing.T) {
	vpt := NewVPT()

	assert.InDelta(t, 0.0, vpt.Update(100.0, 1000.0), 1e-9)
	assert.InDelta(t, 1000.0*0.05, vpt.Update(105.0, 1000.0), 1e-9)
	assert.True(t, vpt.Ready())
}

func TestForceIndexWarmUp(t *testing.T) {
	fi, err := NewForceIndex(13)
	require.NoError(t, err)

	for i, b := range testBars(60, 53) {
		v := fi.Update(b.Close, b.Volume)
		if i+1 < 13 {
			assert.True(t, math.IsNaN(v), "tick %d", i)
		} else {
			assert.False(t, math.IsNaN(v), "tick %d", i)
		}
	}
}

func TestEOMFirstTickAndZeroVolume(t *testing.T) {
	eom, err := NewEOM(14)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(eom.Update(110.0, 100.0, 1000.0)))
	assert.False(t, math.IsNaN(eom.Update(112.0, 102.0, 1000.0)))
	assert.True(t, eom.Ready())

	// zero volume has no box ratio
	assert.True(t, math.IsNaN(eom.Update(113.0, 103.0, 0.0)))
	assert.False(t, eom.Ready())
}

func TestVolumeRatioConstantVolume(t *testing.T) {
	vr, err := NewVolumeRatio(10)
	require.NoError(t, err)

	var v float64
	for i := 0; i < 20; i++ {
		v = vr.Update(5000.0)
	}

	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestVWEMAFollowsVWAP(t *testing.T) {
	vwema, err := NewVWEMA(14, 20)
	require.NoError(t, err)
	vwap, err := NewVWAP(14)
	require.NoError(t, err)
	ema, _ := NewEMA(20)

	for _, b := range testBars(120, 59) {
		v := vwema.Update(b.High, b.Low, b.Close, b.Volume)
		w := vwap.Update(b.High, b.Low, b.Close, b.Volume)
		if math.IsNaN(w) {
			assert.True(t, math.IsNaN(v))
			continue
		}

		assert.InDelta(t, ema.Update(w), v, 1e-9)
	}
}
