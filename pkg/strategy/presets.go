package strategy

import (
	"github.com/pkg/errors"
)

var presetTypes = map[string][]string{
	"trend": {
		"sma", "ema", "wma", "macd", "adx", "cci", "dpo", "vortex",
		"trix", "aroon", "psar",
	},
	"momentum": {
		"rsi", "stoch", "williams_r", "roc", "ppo", "pvo", "uo",
		"stochrsi", "tsi", "ao", "kama", "momentum",
	},
	"volatility": {
		"atr", "boll", "keltner", "donchian", "ulcer", "std",
		"variance", "range", "hvol",
	},
	"volume": {
		"mfi", "ad", "obv", "cmf", "fi", "eom", "vpt", "nvi",
		"vwap", "vwema", "volume_ratio",
	},
	"others": {
		"dr", "dlr", "cr", "clr", "rr", "mdd", "sharpe", "calmar",
		"zscore", "slope", "percentile",
	},
}

// preset categories in "all" fan-out order
var presetOrder = []string{"trend", "momentum", "volatility", "volume", "others"}

// NewPreset builds a named bundle instantiating every indicator of a
// category with its defaults. A positive window overrides each member's
// primary window; secondary parameters keep their defaults. The "all"
// preset bundles every category.
func NewPreset(category string, window int) (*Strategy, error) {
	var categories []string
	if category == "all" {
		categories = presetOrder
	} else if _, ok := presetTypes[category]; ok {
		categories = []string{category}
	} else {
		return nil, errors.Errorf("unknown strategy preset %q", category)
	}

	s := New(category)
	for _, cat := range categories {
		for _, typ := range presetTypes[cat] {
			inc, err := BuildIndicator(IndicatorConfig{Type: typ, Window: window})
			if err != nil {
				return nil, errors.Wrapf(err, "preset %s: indicator %q", category, typ)
			}
			if err := s.Add(typ, inc); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// Presets lists the available preset names.
func Presets() []string {
	names := make([]string, 0, len(presetOrder)+1)
	names = append(names, presetOrder...)
	names = append(names, "all")
	return names
}
