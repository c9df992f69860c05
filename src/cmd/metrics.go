package cmd

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bubblesort/src/sort"
)

var (
	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bubblesort_runs_total",
		Help: "Sequences sorted.",
	}, []string{"type"})
	sortComparisons = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bubblesort_comparisons_total",
		Help: "Element comparisons made.",
	}, []string{"type"})
	sortExchanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bubblesort_exchanges_total",
		Help: "Adjacent exchanges made.",
	}, []string{"type"})
	sortPasses = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bubblesort_passes",
		Help:    "Passes needed per sequence.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)

func init() {
	http.Handle("/metrics", promhttp.Handler())
}

func recordStats(k kind, st sort.Stats) {
	sortRuns.WithLabelValues(string(k)).Inc()
	sortComparisons.WithLabelValues(string(k)).Add(float64(st.Comparisons))
	sortExchanges.WithLabelValues(string(k)).Add(float64(st.Exchanges))
	sortPasses.Observe(float64(st.Passes))
}
