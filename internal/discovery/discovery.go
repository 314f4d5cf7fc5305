// Package discovery enumerates the bitcoin pods of a StatefulSet by probing
// the per-pod DNS names of its headless service in ordinal order.
package discovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/model"
)

// maxOrdinals bounds the scan; StatefulSets larger than this are not
// supported.
const maxOrdinals = 10

type (
	// HostResolver resolves hostnames to addresses. *net.Resolver satisfies it.
	HostResolver interface {
		LookupHost(ctx context.Context, host string) ([]string, error)
	}
)

// Discoverer finds the pods of one bitcoin StatefulSet.
//
// The scan assumes contiguous zero-based ordinals: it stops at the first
// hostname that fails to resolve. A deployment with ordinal gaps (possible
// after a scale-down and partial scale-up) is silently undercounted.
type Discoverer struct {
	service   string
	namespace string
	resolver  HostResolver
	logger    *zap.Logger
}

// NewDiscoverer constructs a Discoverer for the given service and namespace.
func NewDiscoverer(service, namespace string, resolver HostResolver, logger *zap.Logger) *Discoverer {
	return &Discoverer{
		service:   service,
		namespace: namespace,
		resolver:  resolver,
		logger:    logger,
	}
}

// Discover returns the resolvable endpoints in ascending ordinal order,
// possibly none. Resolution failures end the scan; they are expected for the
// first ordinal past the StatefulSet's size and are not reported as errors.
func (d *Discoverer) Discover(ctx context.Context) []model.Endpoint {
	endpoints := make([]model.Endpoint, 0, maxOrdinals)
	for i := 0; i < maxOrdinals; i++ {
		endpoint := model.NewEndpoint(d.service, d.namespace, i)
		if _, err := d.resolver.LookupHost(ctx, endpoint.Host); err != nil {
			break
		}
		d.logger.Info("discovered bitcoin pod", zap.String("host", endpoint.Host))
		endpoints = append(endpoints, endpoint)
	}

	if len(endpoints) == 0 {
		d.logger.Warn("no bitcoin pods discovered",
			zap.String("service", d.service),
			zap.String("namespace", d.namespace))
	}
	return endpoints
}

// Fallback returns the ordinal-0 endpoint, used so that a scrape still
// produces one record when discovery comes up empty.
func (d *Discoverer) Fallback() model.Endpoint {
	return model.NewEndpoint(d.service, d.namespace, 0)
}
