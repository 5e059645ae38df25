package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the AMM module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	SwapLatency      prometheus.Histogram
	SwapFeesRetained *prometheus.CounterVec

	PairsTotal       prometheus.Gauge
	PairCreations    prometheus.Counter
	AssetsRegistered prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// GetMetrics creates and registers AMM metrics (singleton pattern)
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pair", "asset_in", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pair", "asset"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			SwapFeesRetained: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swap_fees_retained_total",
					Help:      "Total swap fees retained by pools",
				},
				[]string{"pair", "asset"},
			),
			PairsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "pairs_total",
					Help:      "Total number of liquidity pairs",
				},
			),
			PairCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "pair_creations_total",
					Help:      "Total number of pairs created",
				},
			),
			AssetsRegistered: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "assets_registered",
					Help:      "Number of registered assets",
				},
			),
		}
	})
	return metrics
}
