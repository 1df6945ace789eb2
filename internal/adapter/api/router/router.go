package router

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/adapter/api/handler"
	"artisanmarket/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	conversationHandler *handler.ConversationHandler,
	statsHandler *handler.StatsHandler,
	productHandler *handler.ProductHandler,
	healthHandler *handler.HealthHandler,
) {
	SetupHealthRouter(e, healthHandler)
	SetupConversationRouter(e, conversationHandler, authMiddleware)
	SetupStatsRouter(e, statsHandler)
	SetupProductRouter(e, productHandler, authMiddleware)
}
