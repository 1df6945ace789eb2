package router

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/adapter/api/handler"
)

func SetupStatsRouter(e *echo.Echo, statsHandler *handler.StatsHandler) {
	e.GET("/v1/stats", statsHandler.GetMarketplaceStats)
}
