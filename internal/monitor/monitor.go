// Package monitor runs the operational HTTP endpoint: liveness and metrics.
package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server exposes /metrics and /healthz while the scraper runs in watch
// mode.
type Server struct {
	start time.Time
	srv   *http.Server

	mu     sync.RWMutex
	checks map[string]func() bool
}

func NewServer(addr string) *Server {
	s := &Server{
		start:  time.Now(),
		checks: make(map[string]func() bool),
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.handleHealth)
	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// RegisterCheck adds a named component probe reported by /healthz.
func (s *Server) RegisterCheck(name string, check func() bool) {
	s.mu.Lock()
	s.checks[name] = check
	s.mu.Unlock()
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		zap.S().Infow("monitor listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			zap.S().Errorw("monitor server error", "error", err)
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}

type healthStatus struct {
	Status         string            `json:"status"`
	Uptime         string            `json:"uptime"`
	StartTime      time.Time         `json:"start_time"`
	MemoryUsage    uint64            `json:"memory_usage"`
	GoroutineCount int               `json:"goroutine_count"`
	Components     map[string]string `json:"component_status,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	status := healthStatus{
		Status:         "ok",
		Uptime:         time.Since(s.start).Round(time.Second).String(),
		StartTime:      s.start,
		MemoryUsage:    m.Alloc,
		GoroutineCount: runtime.NumGoroutine(),
		Components:     make(map[string]string),
	}

	s.mu.RLock()
	for name, check := range s.checks {
		if check() {
			status.Components[name] = "healthy"
		} else {
			status.Components[name] = "unhealthy"
			status.Status = "degraded"
		}
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if status.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(status)
}
