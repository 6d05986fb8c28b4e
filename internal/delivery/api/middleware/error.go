package middleware

import (
	"log/slog"
	"net/http"

	"mealtrack/internal/delivery/api/response"
	deliverycontext "mealtrack/internal/delivery/context"
	domainerrors "mealtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

			return
		}

		// 5xx app errors keep their code but never their internals.
		m.logUnhandled(c, err)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
