package rail12306

import (
	"github.com/prometheus/client_golang/prometheus"
)

type serverMetrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Latency  prometheus.Histogram
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rail12306",
			Subsystem: "tools",
			Name:      "requests",
		}, []string{"tool"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rail12306",
			Subsystem: "tools",
			Name:      "errors",
		}, []string{"tool"}),
		Latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rail12306",
			Subsystem: "tools",
			Name:      "latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	prometheus.MustRegister(m.Requests, m.Errors, m.Latency)

	return m
}
