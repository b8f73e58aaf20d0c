package delivery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courier/config"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8081
	cfg.HTTP.MaxRequestBodySize = "16B"
	cfg.HTTP.Timeouts.ReadTimeout = 3 * time.Second

	return cfg
}

func TestNewEcho(t *testing.T) {
	e := NewEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})
	e.GET("/panic", func(echo.Context) error {
		panic("boom")
	})

	assert.Equal(t, 3*time.Second, e.Server.ReadTimeout)

	t.Run("assigns a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("ok")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("limits the body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 64))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("recovers from panics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListenAddress(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8081", ListenAddress(testConfig()))
}

func TestIgnoreServerClosed(t *testing.T) {
	assert.NoError(t, IgnoreServerClosed(nil))
	assert.NoError(t, IgnoreServerClosed(http.ErrServerClosed))
	assert.Error(t, IgnoreServerClosed(errors.New("address already in use")))
}

func TestShutdown_IdleServer(t *testing.T) {
	require.NoError(t, Shutdown(context.Background(), echo.New()))
}
