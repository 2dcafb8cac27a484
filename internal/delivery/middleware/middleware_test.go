package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfinder/config"
	deliverycontext "wayfinder/internal/delivery/context"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(logs *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestID_ReusesWellFormedHeader(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs, false)

	var seenSession, seenRequest string
	e.GET("/navigation/sessions/:id", func(c echo.Context) error {
		seenSession = deliverycontext.GetSessionIDFromContext(c.Request().Context())
		seenRequest = deliverycontext.GetRequestID(c)

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/navigation/sessions/abc", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-req.42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-req.42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-req.42", seenRequest)
	assert.Equal(t, "abc", seenSession)
}

func TestRequestID_ReplacesUnsafeHeader(t *testing.T) {
	tests := []string{
		"",
		"spaces are not allowed",
		"line\nbreak",
		strings.Repeat("a", maxRequestIDLength+1),
	}

	for _, header := range tests {
		var logs bytes.Buffer
		e := newTestEcho(&logs, false)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, header, got)
		assert.Len(t, got, 36)
	}
}

func TestLogger_QuietUnlessFailedOrDebug(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs, false)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/navigation/sessions/:id", func(echo.Context) error { return domainerrors.ErrSessionNotFound })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, logs.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/navigation/sessions/abc", nil))
	assert.Contains(t, logs.String(), `"status":404`)
	assert.Contains(t, logs.String(), `"session_id":"abc"`)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"request_id":`)
}

func TestLogger_DebugLogsEverythingButHealthChecks(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs, true)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/destinations/qr", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, logs.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/destinations/qr?lat=1", nil))
	assert.Contains(t, logs.String(), `"route":"/destinations/qr"`)
	assert.Contains(t, logs.String(), `"query":"lat=1"`)
}
