package strategy

import "github.com/prometheus/client_golang/prometheus"

var updatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tastream_strategy_updates_total",
		Help: "Number of bars fanned out to strategy members",
	},
	[]string{"strategy"},
)

var resetsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tastream_strategy_resets_total",
		Help: "Number of reset-all calls per strategy",
	},
	[]string{"strategy"},
)

var readyIndicators = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tastream_strategy_ready_indicators",
		Help: "Number of members past their warm-up period",
	},
	[]string{"strategy"},
)

func init() {
	prometheus.MustRegister(
		updatesTotal,
		resetsTotal,
		readyIndicators,
	)
}
