package strategy

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c2quant/tastream/pkg/indicator"
)

// IndicatorConfig declares one strategy member. Only the fields relevant
// to the declared type are read; omitted parameters take the indicator's
// documented default.
type IndicatorConfig struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`

	Window       int `json:"window,omitempty" yaml:"window,omitempty"`
	FastWindow   int `json:"fastWindow,omitempty" yaml:"fastWindow,omitempty"`
	SlowWindow   int `json:"slowWindow,omitempty" yaml:"slowWindow,omitempty"`
	SignalWindow int `json:"signalWindow,omitempty" yaml:"signalWindow,omitempty"`
	StochWindow  int `json:"stochWindow,omitempty" yaml:"stochWindow,omitempty"`
	KWindow      int `json:"kWindow,omitempty" yaml:"kWindow,omitempty"`
	DWindow      int `json:"dWindow,omitempty" yaml:"dWindow,omitempty"`
	ATRWindow    int `json:"atrWindow,omitempty" yaml:"atrWindow,omitempty"`
	EMAWindow    int `json:"emaWindow,omitempty" yaml:"emaWindow,omitempty"`
	Period1      int `json:"period1,omitempty" yaml:"period1,omitempty"`
	Period2      int `json:"period2,omitempty" yaml:"period2,omitempty"`
	Period3      int `json:"period3,omitempty" yaml:"period3,omitempty"`

	Constant            float64 `json:"constant,omitempty" yaml:"constant,omitempty"`
	WidthK              float64 `json:"widthK,omitempty" yaml:"widthK,omitempty"`
	Multiplier          float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Original            bool    `json:"original,omitempty" yaml:"original,omitempty"`
	Annualize           *bool   `json:"annualize,omitempty" yaml:"annualize,omitempty"`
	RiskFreeRate        float64 `json:"riskFreeRate,omitempty" yaml:"riskFreeRate,omitempty"`
	AnnualizationFactor float64 `json:"annualizationFactor,omitempty" yaml:"annualizationFactor,omitempty"`
	AFStart             float64 `json:"afStart,omitempty" yaml:"afStart,omitempty"`
	AFStep              float64 `json:"afStep,omitempty" yaml:"afStep,omitempty"`
	AFMax               float64 `json:"afMax,omitempty" yaml:"afMax,omitempty"`
}

// Config is a declarative strategy definition, usually loaded from YAML.
type Config struct {
	Name       string            `json:"name" yaml:"name"`
	Indicators []IndicatorConfig `json:"indicators" yaml:"indicators"`
}

// ParseConfig unmarshals a YAML strategy definition.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "strategy: can not parse config")
	}

	return &c, nil
}

// Build instantiates the configured strategy.
func (c *Config) Build() (*Strategy, error) {
	if c.Name == "" {
		return nil, errors.New("strategy: config name must not be empty")
	}
	if len(c.Indicators) == 0 {
		return nil, errors.Errorf("strategy %s: config declares no indicators", c.Name)
	}

	s := New(c.Name)
	for _, ic := range c.Indicators {
		inc, err := BuildIndicator(ic)
		if err != nil {
			return nil, errors.Wrapf(err, "strategy %s: indicator %q", c.Name, ic.Name)
		}

		name := ic.Name
		if name == "" {
			name = ic.Type
		}
		if err := s.Add(name, inc); err != nil {
			return nil, err
		}
	}

	log.Infof("strategy %s: built %d indicators", c.Name, s.Len())
	return s, nil
}

func intOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func floatOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// BuildIndicator constructs a single streaming indicator from its
// declaration, applying per-type defaults for omitted parameters.
func BuildIndicator(c IndicatorConfig) (indicator.Streaming, error) {
	switch c.Type {
	case "sma":
		return indicator.NewSMA(intOr(c.Window, 20))
	case "ema":
		return indicator.NewEMA(intOr(c.Window, 20))
	case "wma":
		return indicator.NewWMA(intOr(c.Window, 20))
	case "macd":
		return indicator.NewMACD(intOr(c.FastWindow, 12), intOr(c.SlowWindow, 26), intOr(c.SignalWindow, 9))
	case "adx":
		return indicator.NewADX(intOr(c.Window, 14))
	case "cci":
		return indicator.NewCCI(intOr(c.Window, 20), floatOr(c.Constant, 0.015))
	case "dpo":
		return indicator.NewDPO(intOr(c.Window, 20))
	case "vortex":
		return indicator.NewVortex(intOr(c.Window, 14))
	case "trix":
		return indicator.NewTRIX(intOr(c.Window, 14))
	case "aroon":
		return indicator.NewAroon(intOr(c.Window, 25))
	case "psar":
		return indicator.NewPSAR(floatOr(c.AFStart, 0.02), floatOr(c.AFStep, 0.02), floatOr(c.AFMax, 0.2))
	case "kama":
		return indicator.NewKAMA(intOr(c.Window, 10), intOr(c.FastWindow, 2), intOr(c.SlowWindow, 30))

	case "rsi":
		return indicator.NewRSI(intOr(c.Window, 14))
	case "stoch":
		return indicator.NewStoch(intOr(c.KWindow, intOr(c.Window, 14)), intOr(c.DWindow, 3))
	case "stochrsi":
		return indicator.NewStochRSI(intOr(c.Window, 14), intOr(c.StochWindow, 14), intOr(c.KWindow, 3), intOr(c.DWindow, 3))
	case "williams_r":
		return indicator.NewWilliamsR(intOr(c.Window, 14))
	case "roc":
		return indicator.NewROC(intOr(c.Window, 12))
	case "ppo":
		return indicator.NewPPO(intOr(c.FastWindow, 12), intOr(c.SlowWindow, 26), intOr(c.SignalWindow, 9))
	case "pvo":
		return indicator.NewPVO(intOr(c.FastWindow, 12), intOr(c.SlowWindow, 26), intOr(c.SignalWindow, 9))
	case "uo":
		return indicator.NewUltimateOscillator(intOr(c.Period1, 7), intOr(c.Period2, 14), intOr(c.Period3, 28))
	case "tsi":
		return indicator.NewTSI(intOr(c.SlowWindow, 25), intOr(c.FastWindow, 13))
	case "ao":
		return indicator.NewAwesomeOscillator(intOr(c.FastWindow, 5), intOr(c.SlowWindow, 34))
	case "momentum":
		return indicator.NewMomentum(intOr(c.Window, 10))

	case "atr":
		return indicator.NewATR(intOr(c.Window, 14))
	case "boll":
		return indicator.NewBOLL(intOr(c.Window, 20), floatOr(c.WidthK, 2.0))
	case "keltner":
		return indicator.NewKeltner(intOr(c.Window, 20), intOr(c.ATRWindow, 10), floatOr(c.Multiplier, 2.0), c.Original)
	case "donchian":
		return indicator.NewDonchian(intOr(c.Window, 20))
	case "ulcer":
		return indicator.NewUlcerIndex(intOr(c.Window, 14))
	case "std":
		return indicator.NewStdDev(intOr(c.Window, 20))
	case "variance":
		return indicator.NewVariance(intOr(c.Window, 20))
	case "range":
		return indicator.NewPriceRange(intOr(c.Window, 20))
	case "hvol":
		annualize := true
		if c.Annualize != nil {
			annualize = *c.Annualize
		}
		return indicator.NewHistoricalVolatility(intOr(c.Window, 20), annualize)

	case "mfi":
		return indicator.NewMFI(intOr(c.Window, 14))
	case "ad":
		return indicator.NewAccDist(), nil
	case "obv":
		return indicator.NewOBV(), nil
	case "cmf":
		return indicator.NewCMF(intOr(c.Window, 20))
	case "fi":
		return indicator.NewForceIndex(intOr(c.Window, 13))
	case "eom":
		return indicator.NewEOM(intOr(c.Window, 14))
	case "vpt":
		return indicator.NewVPT(), nil
	case "nvi":
		return indicator.NewNVI(), nil
	case "vwap":
		return indicator.NewVWAP(intOr(c.Window, 14))
	case "vwema":
		return indicator.NewVWEMA(intOr(c.Window, 14), intOr(c.EMAWindow, 20))
	case "volume_ratio":
		return indicator.NewVolumeRatio(intOr(c.Window, 50))

	case "dr":
		return indicator.NewDailyReturn(), nil
	case "dlr":
		return indicator.NewDailyLogReturn(), nil
	case "cr":
		return indicator.NewCumulativeReturn(), nil
	case "clr":
		return indicator.NewCompoundLogReturn(), nil
	case "rr":
		return indicator.NewRollingReturn(intOr(c.Window, 20))
	case "mdd":
		return indicator.NewMaxDrawdown(intOr(c.Window, 252))
	case "sharpe":
		return indicator.NewSharpeRatio(intOr(c.Window, 252), c.RiskFreeRate, floatOr(c.AnnualizationFactor, 252.0))
	case "calmar":
		return indicator.NewCalmarRatio(intOr(c.Window, 252))
	case "zscore":
		return indicator.NewRollingZScore(intOr(c.Window, 20))
	case "slope":
		return indicator.NewLinRegSlope(intOr(c.Window, 14))
	case "percentile":
		return indicator.NewRollingPercentile(intOr(c.Window, 120))
	}

	return nil, errors.Errorf("unknown indicator type %q", c.Type)
}
