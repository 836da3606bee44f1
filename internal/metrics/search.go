package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stylerank",
			Name:      "search_requests_total",
			Help:      "Total number of search pipeline runs",
		},
		[]string{"mode", "status"}, // mode: "single" / "multi"
	)

	RerankDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stylerank",
			Name:      "rerank_duration_seconds",
			Help:      "Candidate reranking duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RerankCandidateFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stylerank",
			Name:      "rerank_candidate_failures_total",
			Help:      "Candidates that fell back to neutral signals during reranking",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(RerankDuration)
	prometheus.MustRegister(RerankCandidateFailures)
	searchMetricsRegistered = true
}
