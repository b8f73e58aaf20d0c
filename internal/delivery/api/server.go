// Package api serves the courier HTTP API.
package api

import (
	"context"
	"log/slog"

	"courier/config"
	"courier/internal/delivery"
	apimiddleware "courier/internal/delivery/api/middleware"
	"courier/internal/delivery/api/router"
	"courier/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server: the shared middleware chain plus CORS,
// the envelope error handler, request validation and the order routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	e.Use(echomiddleware.CORS())

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve listens with h2c so mobile clients can multiplex over cleartext behind the load balancer.
func (s *apiServer) Serve(ctx context.Context) error {
	addr := delivery.ListenAddress(s.cfg)
	s.logger.Info("Starting API HTTP server",
		slog.String("host_port", addr),
		slog.String("service", s.cfg.Env.ServiceName),
	)

	return delivery.IgnoreServerClosed(s.server.StartH2CServer(addr, &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}))
}

func (s *apiServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down API HTTP server")

	return delivery.Shutdown(ctx, s.server)
}
