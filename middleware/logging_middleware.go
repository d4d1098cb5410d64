package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Skip logging for health check endpoint to reduce noise
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			baseLogger.InfoContext(req.Context(), "request completed",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration_ms", duration.Milliseconds(),
				"remote_addr", c.RealIP(),
			)

			return err
		}
	}
}
