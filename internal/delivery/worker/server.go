// Package worker serves the Pub/Sub push endpoint that notifies order owners.
package worker

import (
	"context"
	"log/slog"
	"net/http"

	"courier/config"
	"courier/internal/delivery"
	"courier/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server receiving order status pushes
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push/order-status", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	addr := delivery.ListenAddress(s.cfg)
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", addr))

	return delivery.IgnoreServerClosed(s.server.Start(addr))
}

func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down worker HTTP server")

	return delivery.Shutdown(ctx, s.server)
}
