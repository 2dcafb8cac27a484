package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "wayfinder/internal/delivery/context"
	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/delivery/http/validator"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders handler errors into the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, reply := m.classify(err)
	if status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.Int("status", status),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	_ = reply(c)
}

func (m *ErrorMiddleware) classify(err error) (int, func(echo.Context) error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), func(c echo.Context) error {
			return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		}
	}

	var fields validator.Errors
	if errors.As(err, &fields) {
		return http.StatusBadRequest, func(c echo.Context) error {
			return response.ValidationFailed(c, fields)
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return httpErr.Code, func(c echo.Context) error {
			return response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
		}
	}

	return http.StatusInternalServerError, response.Internal
}
