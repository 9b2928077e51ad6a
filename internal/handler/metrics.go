package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	basketOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orinoco",
			Subsystem: "basket",
			Name:      "operations_total",
			Help:      "Total number of basket operations by operation and result",
		},
		[]string{"operation", "status"},
	)

	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orinoco",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"status"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "orinoco",
			Subsystem: "checkout",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		basketOperations,
		checkoutsTotal,
		checkoutDuration,
	)
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
