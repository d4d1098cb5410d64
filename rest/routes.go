// Package rest exposes the query API over HTTP.
package rest

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pai/config"
	"pai/di"
	middleware_custom "pai/middleware"
	"pai/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	e.Use(middleware_custom.CORSMiddleware(cfg.CORS))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	startedAt := time.Now()

	v1 := e.Group("/v1")
	v1.GET("/health", statusHandler(container.ItemStatsUsecase, startedAt))
	v1.GET("/items", listItemsHandler(container.FetchItemsListUsecase))
	v1.GET("/items/:id", getItemHandler(container.FetchSingleItemUsecase))
	v1.GET("/rss.xml", rssHandler(container.FetchItemsListUsecase, container.RSSBuilder))
}
