package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	dayhttp "github.com/lully/dayplan/internal/adapter/http"
	"github.com/lully/dayplan/internal/adapter/memcache"
	"github.com/lully/dayplan/internal/config"
	"github.com/lully/dayplan/internal/telemetry"
)

// Server assembles the router, handlers and the HTTP server.
type Server struct {
	cfg        *config.Config
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	handler, err := dayhttp.NewHandler(cfg, dayhttp.SystemClock{}, memcache.New(), logger)
	if err != nil {
		return nil, fmt.Errorf("initialize handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(telemetry.MetricsMiddleware)

	handler.RegisterRoutes(r)
	handler.ServeStatic(r)
	r.Method(http.MethodGet, "/metrics", telemetry.Handler())

	return &Server{
		cfg:    cfg,
		logger: logger,
		router: r,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.HTTPBind, cfg.HTTPPort),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (s *Server) Router() chi.Router { return s.router }

func (s *Server) HTTPServer() *http.Server { return s.httpServer }
