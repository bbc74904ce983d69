package indicator

import "math"

// trueRange returns max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	tr = math.Max(tr, math.Abs(high-prevClose))
	tr = math.Max(tr, math.Abs(low-prevClose))
	return tr
}
