package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the envelope returned for every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo error handler that shapes every error
// into the JSON error envelope. Stack traces never reach the client.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		resp := ErrorResponse{
			Success: false,
			Error:   code,
			Message: statusMessage(code),
		}
		if err := c.JSON(code, resp); err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}

// statusMessage maps a status code to its user-visible message text.
func statusMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	case http.StatusUnprocessableEntity:
		return "Unprocessable entity"
	default:
		return "Internal server error"
	}
}
