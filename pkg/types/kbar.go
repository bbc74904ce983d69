package types

// KBar is one closed bar of market data. Indicators consume the subset of
// fields they need; unused fields may be left zero.
type KBar struct {
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// TypicalPrice returns (high + low + close) / 3.
func (k KBar) TypicalPrice() float64 {
	return (k.High + k.Low + k.Close) / 3.0
}

// MedianPrice returns (high + low) / 2.
func (k KBar) MedianPrice() float64 {
	return (k.High + k.Low) / 2.0
}
