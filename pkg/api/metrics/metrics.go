// Package metrics provides HTTP handlers for serving Guerite metrics data.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rcarmo/guerite/pkg/metrics"
)

// Handler is an HTTP handle for serving metric data in Prometheus text
// exposition format, backed by the default Prometheus registry the cycle
// metrics register themselves against.
type Handler struct {
	Path    string
	Handle  http.HandlerFunc
	Metrics *metrics.Metrics
}

// New is a factory function creating a new Metrics instance.
func New() *Handler {
	m := metrics.Default()
	handler := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}).ServeHTTP

	return &Handler{
		Path:    "/v1/metrics",
		Handle:  handler,
		Metrics: m,
	}
}
