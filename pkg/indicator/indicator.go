package indicator

import (
	log "github.com/sirupsen/logrus"

	"github.com/c2quant/tastream/pkg/types"
)

var logger = log.WithField("pkg", "indicator")

// Streaming is the capability set every streaming indicator implements.
// Each indicator owns its bounded state exclusively and mutates it exactly
// once per push; there is no internal locking, callers updating one
// instance from multiple goroutines must synchronize externally.
type Streaming interface {
	// PushK feeds one bar into the indicator. Indicators read only the
	// fields they need.
	PushK(k types.KBar)

	// Outputs returns the last outputs keyed by short field name.
	// Values are NaN until the indicator is ready.
	Outputs() map[string]float64

	// Value returns the last primary output, NaN while warming up.
	Value() float64

	// Ready reports whether the last update produced a defined primary
	// output. For windowed indicators this coincides with the window
	// being filled; ratio-style indicators may flip back on degenerate
	// input (e.g. a zero denominator).
	Ready() bool

	// UpdateCount returns the number of pushes since construction or the
	// last Reset.
	UpdateCount() int

	// Reset returns the indicator to its pre-first-update state without
	// releasing buffers.
	Reset()
}
