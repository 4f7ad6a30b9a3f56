// Package server exposes the expression search over HTTP.
//
// One POST endpoint accepts a puzzle and returns the v1 result schema,
// plus the usual /healthz and /metrics operational endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numex/internal/cache"
	"numex/internal/output"
	"numex/internal/version"

	"numex-core/puzzle"
	"numex-core/rpn"
	"numex-core/solver"
)

const metricsNamespace = "numex"

// Metrics holds the Prometheus instruments for the solve endpoint.
type Metrics struct {
	SolvesTotal          *prometheus.CounterVec
	CacheHitsTotal       prometheus.Counter
	SolveDurationSeconds prometheus.Histogram
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SolvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "solves_total",
				Help:      "Solve requests by status (solved, no_exact, bad_request).",
			},
			[]string{"status"},
		),
		CacheHitsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "Solve requests answered from the result cache.",
			},
		),
		SolveDurationSeconds: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall time per solve request.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}
}

// SolveRequest is the POST /api/v1/solve payload.
type SolveRequest struct {
	ID      string `json:"id"`
	Numbers []int  `json:"numbers" binding:"required"`
	Target  int    `json:"target"`
	Level   string `json:"level"`
}

// Server wires the router, logger, metrics registry, and result cache together.
type Server struct {
	router  *gin.Engine
	log     *slog.Logger
	metrics *Metrics
	results *cache.LRU[string, solver.Result]
	search  func(numbers []int, target int, level rpn.Level) solver.Result
}

// New builds a Server with its own metrics registry and routes installed.
func New(log *slog.Logger) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		log:     log,
		metrics: NewMetrics(reg),
		results: cache.NewLRU[string, solver.Result](4096),
		search:  solver.Solve,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.logRequests())
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.POST("/api/v1/solve", s.handleSolve)
	s.router = r
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.log.Info("listening", "addr", addr, "version", version.Version)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.SolvesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Numbers) == 0 {
		s.metrics.SolvesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "numbers must be non-empty"})
		return
	}
	for _, n := range req.Numbers {
		if n < 0 {
			s.metrics.SolvesTotal.WithLabelValues("bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "numbers must be non-negative"})
			return
		}
	}
	level := rpn.Level(req.Level)
	if req.Level == "" {
		level = rpn.LevelBasic
	}
	if !level.Valid() {
		s.metrics.SolvesTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
		return
	}

	key := fmt.Sprintf("%v|%d|%s", req.Numbers, req.Target, level)
	res, hit := s.results.Get(key)
	if hit {
		s.metrics.CacheHitsTotal.Inc()
	} else {
		start := time.Now()
		res = s.search(req.Numbers, req.Target, level)
		s.metrics.SolveDurationSeconds.Observe(time.Since(start).Seconds())
		s.results.Put(key, res)
	}

	status := "solved"
	if len(res.Exact) == 0 {
		status = "no_exact"
	}
	s.metrics.SolvesTotal.WithLabelValues(status).Inc()

	c.JSON(http.StatusOK, output.ToAPIResult(output.Solved{
		Puzzle: puzzle.Puzzle{ID: req.ID, Numbers: req.Numbers, Target: req.Target, Level: level},
		Result: res,
	}))
}
