package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/phantom-vault/internal/config"
	"github.com/MKhiriev/phantom-vault/internal/logger"
)

var errNoAddress = errors.New("metrics listener address is empty")

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer returns the metrics listener for cfg.Address. metricsHandler is
// mounted at /metrics; /healthz always answers 200.
func NewServer(metricsHandler http.Handler, cfg config.Metrics, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, errNoAddress
	}
	logger.Info().Str("address", cfg.Address).Msg("creating metrics server...")

	return &server{
		httpServer: newHTTPServer(cfg.Address, routes(metricsHandler, logger), logger),
		logger:     logger,
	}, nil
}

func routes(metricsHandler http.Handler, logger *logger.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withTraceID(logger), withLogging)

	router.Method(http.MethodGet, "/metrics", metricsHandler)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// routes are not advertised to unsupported methods
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return router
}

func (s *server) RunServer() {
	s.logger.Info().Msg("Launching metrics server")
	s.httpServer.RunServer()
}

func (s *server) Shutdown(ctx context.Context) {
	s.httpServer.Shutdown(ctx)
	s.logger.Info().Msg("metrics server Shutdown gracefully")
}
