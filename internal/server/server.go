// Package server serves archive pages over HTTP, rendering each page on
// request.
package server

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/extstats/internal/extstats"
	"github.com/vango-dev/extstats/internal/site"
	"github.com/vango-dev/extstats/internal/store"
	"github.com/vango-dev/extstats/pkg/markup"
	"github.com/vango-dev/extstats/pkg/middleware"
	"github.com/vango-dev/extstats/pkg/render"
)

// Config configures the server.
type Config struct {
	// Address is the listen address, e.g. "localhost:8080".
	Address string

	// Archive supplies the pages. Required.
	Archive *site.Archive

	// Renderer renders pages. Required.
	Renderer *render.Renderer

	// Static holds assets served for paths that are not pages, such as
	// /style.css. If nil, those paths are 404.
	Static fs.FS

	// Registry receives the HTTP metrics and backs /metrics.
	// If nil, a new registry is created.
	Registry *prometheus.Registry

	// Logger for requests and failures. If nil, slog.Default() is used.
	Logger *slog.Logger

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

// Server is the archive HTTP server.
type Server struct {
	config     Config
	logger     *slog.Logger
	router     chi.Router
	static     fs.FS
	httpServer *http.Server
}

// New creates a server and its routes.
func New(config Config) *Server {
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		logger: logger.With("component", "server"),
		static: config.Static,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registry)))
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
	})))

	r.Get("/", s.handleList)
	r.Get("/{page}.html", s.handleList)
	r.Get("/ext/{id}.html", s.handleExt)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	r.NotFound(s.serveStatic)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	p, ok := extstats.PageNumber(chi.URLParam(r, "page"))
	if !ok {
		s.serveStatic(w, r)
		return
	}
	node, ok := s.config.Archive.ListPage(p)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writePage(w, r, site.KindList, node)
}

func (s *Server) handleExt(w http.ResponseWriter, r *http.Request) {
	node, ok, err := s.config.Archive.ExtPage(chi.URLParam(r, "id"))
	if err != nil {
		s.logger.ErrorContext(r.Context(), "assemble page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writePage(w, r, site.KindExt, node)
}

// writePage renders into a buffer first so a render fault becomes a clean
// 500 rather than a truncated page.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, kind string, node *markup.Node) {
	var buf bytes.Buffer
	if err := s.config.Renderer.RenderPage(r.Context(), &buf, kind, node); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", store.ContentType)
	w.Write(buf.Bytes())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
