// Package server exposes the maze solvers over HTTP with gin.
//
// Routes (all under /v1):
//
//	GET  /healthz     liveness probe
//	GET  /solvers     available solver names
//	POST /solve       JSON body: start, end, grid, solver
//	POST /solve/raw   text body in the maze file format, ?solver=
//
// Every response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/cache"
)

// shutdownGrace bounds how long Run waits for in-flight requests.
const shutdownGrace = 5 * time.Second

// Config holds configuration settings for creating a new Server.
type Config struct {
	Addr     string        // address to listen on
	BaseURL  string        // prefix in front of /v1, usually empty
	GinMode  string        // release, debug or test; empty keeps gin's current mode
	Store    cache.Store   // nil disables caching
	MaxSteps int           // per-search step budget, 0 = unlimited
	Timeout  time.Duration // per-search deadline, 0 = none
	Logger   *slog.Logger
}

// Server manages the HTTP server and its controllers.
type Server struct {
	addr        string
	baseURL     string
	controllers []Controller
	log         *slog.Logger
	engine      *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "http"))

	s := &Server{
		addr:    cfg.Addr,
		baseURL: cfg.BaseURL,
		log:     log,
		controllers: []Controller{
			NewSolveController(cfg.Store, cfg.MaxSteps, cfg.Timeout, log),
		},
	}
	s.engine = s.routes()

	return s
}

// routes sets up middleware and registers every controller under /v1.
func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(s.log))

	api := router.Group(s.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range s.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Handler returns the HTTP handler, for tests or custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
