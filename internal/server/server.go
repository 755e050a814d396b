package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lkklausen/ironmax/internal/config"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	limits  config.LimitsConfig
	log     *slog.Logger
	metrics *Metrics
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(limits config.LimitsConfig, log *slog.Logger) *Server {
	s := &Server{
		limits:  limits,
		log:     log,
		metrics: NewMetrics(),
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(RequestMetrics(s.metrics))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/onerm", s.handleEstimate)
		r.Get("/onerm/compare", s.handleCompare)
		r.Get("/projection", s.handleProjection)
		r.Get("/catalog", s.handleCatalog)
	})

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		s.metrics.Registry(), promhttp.HandlerOpts{}))
}
