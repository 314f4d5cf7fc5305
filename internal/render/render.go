// Package render serializes pod snapshots into the Prometheus text
// exposition format.
package render

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/model"
)

var (
	blocksDesc = prometheus.NewDesc(
		"bitcoin_blocks", "Current block height", []string{"pod"}, nil)
	peersDesc = prometheus.NewDesc(
		"bitcoin_peers", "Number of connected peers", []string{"pod"}, nil)
	connectionsDesc = prometheus.NewDesc(
		"bitcoin_connections", "Number of network connections", []string{"pod"}, nil)
	difficultyDesc = prometheus.NewDesc(
		"bitcoin_difficulty", "Current network difficulty", []string{"pod"}, nil)
	verificationProgressDesc = prometheus.NewDesc(
		"bitcoin_verification_progress", "Blockchain verification progress (0-1)", []string{"pod"}, nil)
	healthyDesc = prometheus.NewDesc(
		"bitcoin_pod_healthy", "Bitcoin pod health status", []string{"pod"}, nil)
)

// snapshotCollector exposes one scrape's records as constant gauges, one
// sample per metric family per pod.
type snapshotCollector struct {
	records []model.PodMetrics
}

func (c snapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- blocksDesc
	ch <- peersDesc
	ch <- connectionsDesc
	ch <- difficultyDesc
	ch <- verificationProgressDesc
	ch <- healthyDesc
}

func (c snapshotCollector) Collect(ch chan<- prometheus.Metric) {
	for _, r := range c.records {
		healthy := 0.0
		if r.Healthy {
			healthy = 1
		}
		ch <- prometheus.MustNewConstMetric(blocksDesc, prometheus.GaugeValue, float64(r.Blocks), r.Pod)
		ch <- prometheus.MustNewConstMetric(peersDesc, prometheus.GaugeValue, float64(r.Peers), r.Pod)
		ch <- prometheus.MustNewConstMetric(connectionsDesc, prometheus.GaugeValue, float64(r.Connections), r.Pod)
		ch <- prometheus.MustNewConstMetric(difficultyDesc, prometheus.GaugeValue, r.Difficulty, r.Pod)
		ch <- prometheus.MustNewConstMetric(verificationProgressDesc, prometheus.GaugeValue, r.VerificationProgress, r.Pod)
		ch <- prometheus.MustNewConstMetric(healthyDesc, prometheus.GaugeValue, healthy, r.Pod)
	}
}

// Render writes the records as text exposition: six gauge families, each with
// one sample per pod labeled pod="<name>".
func Render(w io.Writer, records []model.PodMetrics) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(snapshotCollector{records: records}); err != nil {
		return fmt.Errorf("register snapshot collector: %w", err)
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather snapshot: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("encode %s: %w", family.GetName(), err)
		}
	}
	return nil
}
