// Package middleware holds the echo middlewares that sit in front of every
// API route.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pai/config"
)

// DevKeyHeader lets local tooling call the API without a browser origin.
const DevKeyHeader = "X-Local-Dev-Key"

// CORSMiddleware enforces the configured origin policy. Requests without an
// Origin header (curl, the CLI) pass through untouched; browser requests
// need an allowed origin or a valid dev key.
func CORSMiddleware(cfg config.CORSConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" {
				return next(c)
			}

			allowed := cfg.IsOriginAllowed(origin) ||
				cfg.IsDevKeyValid(c.Request().Header.Get(DevKeyHeader))
			if !allowed {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "origin not allowed"})
			}

			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, origin)
			header.Set(echo.HeaderVary, echo.HeaderOrigin)
			header.Set(echo.HeaderAccessControlAllowMethods, "GET, OPTIONS")
			header.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Accept, "+DevKeyHeader)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
