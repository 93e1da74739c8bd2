// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "socialwall"

// Feed names used as the "feed" label.
const (
	FeedWall         = "wall"
	FeedTimeline     = "timeline"
	FeedConversation = "conversation"
)

type Metrics struct {
	// RequestsTotal counts HTTP requests by method, route and status code.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration observes HTTP latency by method and route.
	RequestDuration *prometheus.HistogramVec
	// FeedSize observes how many posts a feed read returned.
	FeedSize *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		FeedSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "posts",
			Help:      "Number of posts returned per feed read.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"feed"}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.FeedSize)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveFeed(feed string, size int) {
	m.FeedSize.WithLabelValues(feed).Observe(float64(size))
}
