// Package httpapi wires the Control Surface described by the spec's external
// interfaces: POST /v1/update and GET /v1/metrics behind a bearer-token
// gate, plus an unauthenticated GET /v1/health, on a single HTTP listener.
//
// It is adapted from the teacher's own wiring in cmd/root.go (the
// startHTTPAPIServer/startHTTPMetricsServer pattern) and composes the
// existing pkg/api, pkg/api/update, pkg/api/metrics and pkg/api/host
// handlers rather than reimplementing HTTP plumbing.
package httpapi
