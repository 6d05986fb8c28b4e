package response

import (
	"net/http"

	deliverycontext "mealtrack/internal/delivery/context"
	domainerrors "mealtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "MISSING_FIELDS"
	RequestID string `json:"request_id"`        // Request tracking ID
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Success writes the payload itself as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
		Details:   details,
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders application errors and hands anything else to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// 5xx app errors still go through the central handler so they get logged.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return errors.WithStack(err)
		}
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
