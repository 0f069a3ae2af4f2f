package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	pkgapi "github.com/rcarmo/guerite/pkg/api"
	"github.com/rcarmo/guerite/pkg/api/host"
	metricsapi "github.com/rcarmo/guerite/pkg/api/metrics"
	"github.com/rcarmo/guerite/pkg/api/update"
	"github.com/rcarmo/guerite/pkg/metrics"
	"github.com/rcarmo/guerite/pkg/types"
)

// TriggerFunc runs one action cycle restricted to the given image names
// (or every monitored container when empty) and returns its summary metric.
type TriggerFunc func(images []string) *metrics.Metric

// Server is the Control Surface: a bearer-token-gated HTTP listener exposing
// POST /v1/update, GET /v1/metrics (when enabled), and an unauthenticated
// GET /v1/health liveness probe.
type Server struct {
	api       *pkgapi.API
	cfg       types.RunConfig
	startedAt time.Time

	mu        sync.RWMutex
	lastCycle time.Time
}

// New builds the Control Surface server. trigger is invoked synchronously
// from the /v1/update handler; the caller (the control loop in cmd) owns
// serialization against its own scheduled cycles via the lock it passes to
// update.New.
func New(client types.Client, cfg types.RunConfig, trigger TriggerFunc, updateLock chan bool) *Server {
	addr := apiAddr(cfg.HTTPAPIHost, cfg.HTTPAPIPort)

	srv := &Server{
		api:       pkgapi.New(cfg.HTTPAPIToken, addr),
		cfg:       cfg,
		startedAt: time.Now(),
	}

	srv.api.RegisterPublicFunc("/v1/health", srv.handleHealth)

	if cfg.HTTPAPI {
		updateHandler := update.New(func(images []string) *metrics.Metric {
			metric := trigger(images)
			srv.recordCycle()

			return metric
		}, updateLock)
		srv.api.RegisterFunc(updateHandler.Path, updateHandler.Handle)

		if cfg.HTTPAPIMetrics {
			metricsHandler := metricsapi.New()
			srv.api.RegisterHandler(metricsHandler.Path, metricsHandler.Handle)

			hostHandler := host.New(client)
			srv.api.RegisterHandler(hostHandler.Path+"/", hostHandler)
		}
	}

	return srv
}

// ServeHTTPForTest exposes the underlying mux for handler-level tests
// without binding a real listener.
func (s *Server) ServeHTTPForTest(w http.ResponseWriter, r *http.Request) {
	s.api.ServeHTTP(w, r)
}

// RecordCycle marks the given time as the most recent completed action
// cycle, surfaced by GET /v1/health. Call this from the control loop after
// every scheduled (non-HTTP-triggered) cycle too, so the liveness probe
// reflects cron-driven activity as well as HTTP-triggered ones.
func (s *Server) RecordCycle(when time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if when.After(s.lastCycle) {
		s.lastCycle = when
	}
}

func (s *Server) recordCycle() {
	s.RecordCycle(time.Now())
}

// Start launches the listener if the control surface is enabled in cfg. It
// blocks the caller only when block is true; otherwise it runs the server in
// the background and returns immediately.
func (s *Server) Start(ctx context.Context, block bool) error {
	if !s.cfg.HTTPAPI {
		logrus.Debug("HTTP control surface disabled, skipping listener start")

		return nil
	}

	logrus.WithField("addr", s.api.Addr).Info("Starting Guerite control surface")

	return s.api.Start(ctx, block, s.cfg.DryRun)
}

type healthResponse struct {
	Status        string    `json:"status"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	LastCycle     time.Time `json:"last_cycle,omitzero"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	last := s.lastCycle
	s.mu.RUnlock()

	resp := healthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
		LastCycle:     last,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logrus.WithError(err).Error("Failed to encode health response")
	}
}

// apiAddr formats a listen address, bracketing literal IPv6 hosts the way
// the teacher's own getAPIAddr does.
func apiAddr(host, port string) string {
	addr := host + ":" + port
	if host != "" && strings.Contains(host, ":") && net.ParseIP(host) != nil {
		addr = "[" + host + "]:" + port
	}

	return addr
}
