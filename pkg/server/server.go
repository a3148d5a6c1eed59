// Package server exposes the sort pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz                    liveness and build version
//	GET  /v1/algorithms              registered algorithm names
//	GET  /v1/sort/{algorithm}        sort the alternating row for ?lights=k
//	POST /v1/sort/{algorithm}        sort the row in {"row": "D L D L"}
//	GET  /v1/compare                 compare algorithms over ?from=&to=
//	GET  /metrics                    Prometheus metrics
//
// Sort routes answer with JSON unless ?format= names another output format
// (text, yaml, dot, svg), in which case the rendered document is returned
// with its content type. ?trace=true records every pass in JSON responses.
//
// Failures are JSON objects {"code": "...", "message": "..."} whose code is
// one of the codes in pkg/errors.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/disksort/pkg/pipeline"
)

const (
	// maxBodyBytes bounds POST bodies. A maximal row is well under this.
	maxBodyBytes = 64 << 10

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server routes HTTP requests to a pipeline.Runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	gatherer prometheus.Gatherer
	router   chi.Router
}

// New builds a server. Metrics are served from gatherer; pass nil to use the
// default Prometheus registry.
func New(runner *pipeline.Runner, logger *log.Logger, gatherer prometheus.Gatherer) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		gatherer: gatherer,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/sort/{algorithm}", s.handleSortLights)
		r.Post("/sort/{algorithm}", s.handleSortRow)
		r.Get("/compare", s.handleCompare)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, s.logger, errNotFound(r.URL.Path))
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
