package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "courier/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string, logs *bytes.Buffer) (*httptest.ResponseRecorder, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(logs, nil))
	m := NewRequestIDMiddleware(logger)

	var seen string
	handler := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		seen = deliverycontext.GetRequestIDFromContext(ctx)
		assert.Equal(t, seen, deliverycontext.GetRequestID(c))
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handler(echo.New().NewContext(req, rec)))

	return rec, seen
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var logs bytes.Buffer

	rec, seen := serveWithRequestID(t, "client-req-7", &logs)

	assert.Equal(t, "client-req-7", seen)
	assert.Equal(t, "client-req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), "request_id=client-req-7")
}

func TestRequestIDMiddleware_ReplacesMissingOrMalformedID(t *testing.T) {
	for _, header := range []string{"", "two words"} {
		var logs bytes.Buffer

		rec, seen := serveWithRequestID(t, header, &logs)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}
