// Package metrics holds the exporter's own prometheus instrumentation,
// exposed separately from the scraped pod metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scrapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bitcoin_exporter",
		Subsystem: "scrape",
		Name:      "scrapes_total",
		Help:      "Count of metric scrapes served.",
	}, []string{"status"})
	scrapeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bitcoin_exporter",
		Subsystem: "scrape",
		Name:      "duration_seconds",
		Help:      "Duration of the discovery and collection pipeline.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	podsDiscovered = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bitcoin_exporter",
		Subsystem: "scrape",
		Name:      "pods_discovered",
		Help:      "Number of bitcoin pods found by the last discovery pass.",
	})
)

// Scrape tracks metrics for whole scrape pipeline runs.
type Scrape struct{}

// NewScrape constructs a metrics collector for scrape runs.
func NewScrape() *Scrape {
	return &Scrape{}
}

// Observe records one pipeline run with its discovered pod count.
func (m Scrape) Observe(err error, pods int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scrapesTotal.WithLabelValues(status).Inc()
	scrapeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	podsDiscovered.Set(float64(pods))
}
