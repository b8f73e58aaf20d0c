package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(ctx context.Context) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("from echo context", func(t *testing.T) {
		c := newEchoContext(context.Background())
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		c := newEchoContext(WithRequestID(context.Background(), "req-2"))

		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		c := newEchoContext(context.Background())

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "3f1c2a7e-5a6b-4c1d-9e8f-0a1b2c3d4e5f", want: true},
		{id: "courier-app/1.4.2#17", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "café", want: false},
		{id: strings.Repeat("a", 129), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidRequestID(tt.id), tt.id)
	}
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
}
