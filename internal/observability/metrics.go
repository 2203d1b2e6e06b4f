// Package observability holds the service's Prometheus metrics.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProviderRequests counts upstream calls issued, per provider.
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Upstream property-data provider calls issued",
		},
		[]string{"provider"},
	)

	// ProviderErrors counts failed upstream calls by provider and error kind.
	ProviderErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Upstream property-data provider calls that failed",
		},
		[]string{"provider", "kind"},
	)
)

func init() {
	prometheus.MustRegister(ProviderRequests, ProviderErrors)
}

// Handler returns the scrape endpoint for the router to mount.
func Handler() http.Handler {
	return promhttp.Handler()
}
