package rest

import (
	"github.com/labstack/echo/v4"

	"pai/config"
	"pai/di"
)

// NewServer builds the echo instance the server entry point and the CLI
// serve command share.
func NewServer(container *di.ApplicationComponents, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	RegisterRoutes(e, container, cfg)
	return e
}
