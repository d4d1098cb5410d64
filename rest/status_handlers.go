package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pai/config"
	"pai/usecase/item_stats_usecase"
)

func statusHandler(statsUsecase *item_stats_usecase.ItemStatsUsecase, startedAt time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := statsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "status")
		}

		byKind := make(map[string]int, len(stats.ByKind))
		for kind, count := range stats.ByKind {
			byKind[kind.String()] = count
		}

		return c.JSON(http.StatusOK, StatusResponse{
			Status:        "ok",
			Version:       config.Version,
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
			TotalItems:    stats.Total,
			ByKind:        byKind,
		})
	}
}
