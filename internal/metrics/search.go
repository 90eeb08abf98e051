package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursefind",
			Name:      "search_requests_total",
			Help:      "Total number of catalog search requests",
		},
		[]string{"status"}, // "ok" / "invalid" / "unavailable" / "error"
	)

	SearchHits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "coursefind",
			Name:      "search_hits",
			Help:      "Total match count per search request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	SuggestRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursefind",
			Name:      "suggest_requests_total",
			Help:      "Total number of autocomplete requests",
		},
		[]string{"field", "status"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers catalog search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchHits)
	prometheus.MustRegister(SuggestRequestsTotal)
	searchMetricsRegistered = true
}
