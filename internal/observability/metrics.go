// README: Prometheus metrics shared by the HTTP layer and the chat chain.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campusos",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "campusos",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ChatReplies counts chat replies by the source that produced them
// (a provider name, "local", or "quota").
var ChatReplies = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campusos",
	Subsystem: "chat",
	Name:      "replies_total",
	Help:      "Total chat replies by source.",
}, []string{"source"})

var ChatProviderErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campusos",
	Subsystem: "chat",
	Name:      "provider_errors_total",
	Help:      "Total failed chat provider calls.",
}, []string{"provider"})

var ChatProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "campusos",
	Subsystem: "chat",
	Name:      "provider_latency_seconds",
	Help:      "Chat provider call latency in seconds.",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
}, []string{"provider"})

var FareCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campusos",
	Subsystem: "fare",
	Name:      "calculations_total",
	Help:      "Fare calculations by kind and whether the station pair was listed.",
}, []string{"kind", "known_pair"})

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
