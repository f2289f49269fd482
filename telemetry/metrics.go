// Package telemetry exposes the running game to local tools: prometheus
// metrics, a websocket feed of gameplay events and a health check.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values are bounded: outcome is "won" or "lost".
var (
	applesPicked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pigem_apples_picked_total",
		Help: "Apples eaten across all rounds",
	})

	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pigem_rounds_total",
		Help: "Finished rounds by outcome",
	}, []string{"outcome"})

	applesRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pigem_apples_remaining",
		Help: "Apples left on the current map",
	})

	updateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pigem_update_seconds",
		Help:    "Time spent in one game update",
		Buckets: []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.016, 0.033},
	})
)

// RecordApple counts an eaten apple.
func RecordApple(remaining int) {
	applesPicked.Inc()
	applesRemaining.Set(float64(remaining))
}

// RecordRoundStart resets the remaining gauge for a new map.
func RecordRoundStart(goal int) {
	applesRemaining.Set(float64(goal))
}

// RecordRound counts a finished round.
func RecordRound(outcome string) {
	roundsTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpdate records how long one game update took.
func ObserveUpdate(d time.Duration) {
	updateDuration.Observe(d.Seconds())
}
