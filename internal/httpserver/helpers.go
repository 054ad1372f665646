package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shopping_cart/internal/service"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}

// bindAndValidate rejects malformed bodies with 400 and bodies that fail
// field rules with 422.
func bindAndValidate(c echo.Context, l *slog.Logger, event string, req any) error {
	if err := c.Bind(req); err != nil {
		l.Warn(event, "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		l.Warn(event, "status", http.StatusUnprocessableEntity, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// serviceError converts a service error into the HTTP error returned to the
// client and logs it.
func serviceError(l *slog.Logger, event string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", http.StatusNotFound, "reason", "not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", http.StatusUnprocessableEntity, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn(event, "status", http.StatusBadRequest, "reason", "conflict", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		l.Error(event, "status", http.StatusInternalServerError, "reason", "storage error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
