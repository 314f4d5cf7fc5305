// Package transport exposes the exporter's HTTP surface.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/model"
	"github.com/goodnatureofminers/bitcoin-pod-exporter/internal/render"
)

type (
	// Snapshotter runs the discovery and collection pipeline.
	Snapshotter interface {
		Snapshot(ctx context.Context) ([]model.PodMetrics, error)
	}
)

// Handler routes the exporter's three endpoints: /metrics runs the full
// pipeline, /health answers without touching it, /debug/metrics serves the
// exporter's own instrumentation. Everything else is a bare 404.
type Handler struct {
	svc    Snapshotter
	debug  http.Handler
	logger *zap.Logger
}

// NewHandler returns the exporter's HTTP handler.
func NewHandler(svc Snapshotter, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		debug:  promhttp.Handler(),
		logger: logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/metrics":
		h.metrics(w, r)
	case "/health":
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	case "/debug/metrics":
		h.debug.ServeHTTP(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// metrics runs one scrape. Individual pod failures never reach this point;
// an error here means the pipeline itself broke.
func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, records); err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.logger.Error("scrape failed", zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, "Error: %s", err)
}
