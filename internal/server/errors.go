package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/amaljosh/wellness/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Expected errors
// (*echo.HTTPError) keep their status; anything else is logged with a stack
// trace and answered with a bare 500 so no internals leak to visitors.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "error", err, "code", he.Code)
			} else {
				logger.Debug("HTTP error", "error", err, "code", he.Code)
			}
			respond(c, he.Code, http.StatusText(he.Code))
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"stack_trace", string(debug.Stack()),
		)
		respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func respond(c echo.Context, code int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, message)
	}
	if err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
