package httpserver

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	loggingmw "github.com/Skotchmaster/shopping_cart/internal/middleware/logging"
	"github.com/Skotchmaster/shopping_cart/internal/transport"
)

const metricsSubsystem = "shopping_cart"

// New builds the echo instance with the middleware chain, metrics and all
// routes. Metrics go to reg so tests can use a private registry.
func New(logger *slog.Logger, reg *prometheus.Registry, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = transport.NewValidator()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: reg,
	}))
	e.Use(loggingmw.RequestLogger(logger))

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	Register(e, d)
	return e
}
