package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/pkg/logger"
	"app/prometheus"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Catalog       *handler.CatalogHandler
	Order         *handler.OrderHandler
	Payment       *handler.PaymentHandler
	Commission    *handler.CommissionHandler
	PaymentMethod *handler.PaymentMethodHandler
	Stats         *handler.StatsHandler
}

// New wires middleware and routes onto a fresh echo instance. Everything
// API-facing lives under /api; /health and /metrics stay outside it.
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(logger.Middleware(logger.GetLogger()))
	e.Use(prometheus.MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", prometheus.HandlerFunc())

	api := e.Group("/api")
	h.Auth.RegisterRoutes(api, cfg)
	h.Catalog.RegisterRoutes(api, cfg)
	h.Order.RegisterRoutes(api, cfg)
	h.Payment.RegisterRoutes(api, cfg)
	h.Commission.RegisterRoutes(api, cfg)
	h.PaymentMethod.RegisterRoutes(api, cfg)
	h.Stats.RegisterRoutes(api, cfg)

	return e
}

func Start(e *echo.Echo, port string) error {
	addr := port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
