// Package service orchestrates one scrape: discover the pods, collect a
// snapshot from each in parallel, and hand the records to the renderer.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/model"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/pkg/workerpool"
)

// Exporter drives the discovery and collection pipeline.
type Exporter struct {
	discoverer    PodDiscoverer
	rpc           NodeClient
	scrapeMetrics ScrapeMetrics
	logger        *zap.Logger
}

// NewExporter builds the pipeline with the provided dependencies.
func NewExporter(discoverer PodDiscoverer, rpc NodeClient, scrapeMetrics ScrapeMetrics, logger *zap.Logger) *Exporter {
	return &Exporter{
		discoverer:    discoverer,
		rpc:           rpc,
		scrapeMetrics: scrapeMetrics,
		logger:        logger,
	}
}

// Snapshot collects one record per pod, one worker per pod. Record order is
// unspecified. Unreachable pods yield zeroed, unhealthy records rather than
// being dropped, so a scrape always returns at least one record: when
// discovery finds nothing, the ordinal-0 endpoint is probed anyway.
func (e *Exporter) Snapshot(ctx context.Context) (records []model.PodMetrics, err error) {
	started := time.Now()
	defer func() {
		e.scrapeMetrics.Observe(err, len(records), started)
	}()

	endpoints := e.discoverer.Discover(ctx)
	if len(endpoints) == 0 {
		fallback := e.discoverer.Fallback()
		e.logger.Warn("discovery found no pods, using fallback", zap.String("host", fallback.Host))
		endpoints = []model.Endpoint{fallback}
	}

	e.logger.Info("collecting pod metrics", zap.Int("pods", len(endpoints)))
	records = workerpool.Gather(ctx, len(endpoints), endpoints, e.collectPod)
	return records, nil
}

// collectPod issues the three RPC calls for one pod. Each call's failure is
// absorbed independently: the affected fields stay zero and the rest of the
// record is still filled in. Healthy mirrors only the getblockchaininfo
// outcome.
func (e *Exporter) collectPod(ctx context.Context, endpoint model.Endpoint) model.PodMetrics {
	record := model.PodMetrics{
		Pod:  endpoint.Pod(),
		Host: endpoint.Host,
	}

	if info, err := e.rpc.GetBlockchainInfo(ctx, endpoint.Host); err != nil {
		e.logger.Debug("getblockchaininfo failed", zap.String("host", endpoint.Host), zap.Error(err))
	} else {
		record.Blocks = int64(info.Blocks)
		record.Difficulty = info.Difficulty
		record.VerificationProgress = info.VerificationProgress
		record.Healthy = true
	}

	if peers, err := e.rpc.GetPeerInfo(ctx, endpoint.Host); err != nil {
		e.logger.Debug("getpeerinfo failed", zap.String("host", endpoint.Host), zap.Error(err))
	} else {
		record.Peers = len(peers)
	}

	if info, err := e.rpc.GetNetworkInfo(ctx, endpoint.Host); err != nil {
		e.logger.Debug("getnetworkinfo failed", zap.String("host", endpoint.Host), zap.Error(err))
	} else {
		record.Connections = int64(info.Connections)
	}

	return record
}
