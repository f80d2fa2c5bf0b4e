// Package metrics exposes Prometheus collectors for the scraping service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	fetchesTotal         *prometheus.CounterVec
	fetchDurationSeconds *prometheus.HistogramVec
	cacheHitsTotal       prometheus.Counter
	cacheMissesTotal     prometheus.Counter

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		fetchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardwatch_fetches_total",
				Help: "Total number of outbound page fetches, labeled by host and status code.",
			},
			[]string{"host", "code"},
		)

		fetchDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boardwatch_fetch_duration_seconds",
				Help:    "Outbound fetch latency in seconds, labeled by host.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"host"},
		)

		cacheHitsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardwatch_cache_hits_total",
				Help: "Total number of page cache hits.",
			},
		)

		cacheMissesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "boardwatch_cache_misses_total",
				Help: "Total number of page cache misses (including forced fetches).",
			},
		)
	})
}

// RecordFetch records one outbound fetch attempt.
func RecordFetch(host string, statusCode int, duration time.Duration) {
	if fetchesTotal == nil {
		return
	}
	fetchesTotal.WithLabelValues(host, strconv.Itoa(statusCode)).Inc()
	fetchDurationSeconds.WithLabelValues(host).Observe(duration.Seconds())
}

// RecordCacheHit records a page served from the cache.
func RecordCacheHit() {
	if cacheHitsTotal != nil {
		cacheHitsTotal.Inc()
	}
}

// RecordCacheMiss records a page that required a network fetch.
func RecordCacheMiss() {
	if cacheMissesTotal != nil {
		cacheMissesTotal.Inc()
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
