// Package model defines the data carried through one exporter scrape.
package model

import (
	"fmt"
	"strings"
)

// Endpoint identifies one bitcoin pod of the StatefulSet, addressable by its
// per-pod DNS name.
type Endpoint struct {
	Ordinal int
	Host    string
}

// NewEndpoint builds the endpoint for a StatefulSet ordinal, following the
// headless-service naming scheme
// <service>-<ordinal>.<service>.<namespace>.svc.cluster.local.
func NewEndpoint(service, namespace string, ordinal int) Endpoint {
	return Endpoint{
		Ordinal: ordinal,
		Host:    fmt.Sprintf("%s-%d.%s.%s.svc.cluster.local", service, ordinal, service, namespace),
	}
}

// Pod returns the pod name, the first DNS label of the host.
func (e Endpoint) Pod() string {
	pod, _, _ := strings.Cut(e.Host, ".")
	return pod
}

// PodMetrics is one scrape's snapshot of a single pod. Numeric fields default
// to zero when their source RPC call failed; Healthy reflects only the
// getblockchaininfo call.
type PodMetrics struct {
	Pod                  string
	Host                 string
	Blocks               int64
	Peers                int
	Connections          int64
	Difficulty           float64
	VerificationProgress float64
	Healthy              bool
}
