package response

import (
	"net/http"

	deliverycontext "wayfinder/internal/delivery/context"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo identifies a failure. Details are dropped for 5xx replies.
type ErrorInfo struct {
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Success writes data with the given status. An empty message becomes "Success".
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if s, ok := details.(string); statusCode >= http.StatusInternalServerError || (ok && s == "") {
		details = nil
	}

	return c.JSON(statusCode, Response{
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:      errorCode,
			Details:   details,
			RequestID: c.Response().Header().Get(deliverycontext.HeaderXRequestID),
		},
	})
}

// ValidationFailed writes a 400 listing the offending fields.
func ValidationFailed(c echo.Context, fields any) error {
	sentinel := domainerrors.ErrValidationFailed

	return Error(c, sentinel.HTTPCode(), sentinel.ErrorCode(), sentinel.Message(), fields)
}

// Internal writes a 500 without leaking the cause.
func Internal(c echo.Context) error {
	sentinel := domainerrors.ErrInternalError

	return Error(c, sentinel.HTTPCode(), sentinel.ErrorCode(), "Internal server error, please try again later", nil)
}

// HandleAppError writes domain errors (sentinels, routing and location
// failures) as their HTTP response and hands anything else to the echo error
// handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
