package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var toolDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "tally",
		Subsystem: "tools",
		Name:      "duration_seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"tool", "status"},
)

// observeTool records one tool invocation labeled by the envelope
// status it produced.
func observeTool(tool, status string, elapsed time.Duration) {
	toolDuration.WithLabelValues(tool, status).Observe(elapsed.Seconds())
}
