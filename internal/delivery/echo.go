package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"courier/config"
	"courier/internal/delivery/middleware"
	"courier/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// NewEcho returns an echo instance carrying the configured server timeouts and the
// middleware chain shared by the API and the worker, outermost first:
// panic recovery, request id, access log, body limit.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	// Request ID must run before the access log so log lines carry it
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	return e
}

// ListenAddress is the host:port every courier HTTP server binds to.
func ListenAddress(cfg *config.Config) string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port))
}

// IgnoreServerClosed drops the error echo returns after a graceful shutdown.
func IgnoreServerClosed(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

// Shutdown gracefully stops e within lifecycle.DefaultTimeout.
func Shutdown(ctx context.Context, e *echo.Echo) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(e.Shutdown(shutdownCtx))
}
