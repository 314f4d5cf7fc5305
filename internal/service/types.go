package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient issues the RPC calls one pod snapshot needs.
	NodeClient interface {
		GetBlockchainInfo(ctx context.Context, host string) (*btcjson.GetBlockChainInfoResult, error)
		GetPeerInfo(ctx context.Context, host string) ([]btcjson.GetPeerInfoResult, error)
		GetNetworkInfo(ctx context.Context, host string) (*btcjson.GetNetworkInfoResult, error)
	}

	// PodDiscoverer enumerates the pods to scrape.
	PodDiscoverer interface {
		Discover(ctx context.Context) []model.Endpoint
		Fallback() model.Endpoint
	}

	// ScrapeMetrics records instrumentation for pipeline runs.
	ScrapeMetrics interface {
		Observe(err error, pods int, started time.Time)
	}
)
