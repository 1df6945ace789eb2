package router

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/adapter/api/handler"
	"artisanmarket/internal/adapter/api/middleware"
)

// SetupConversationRouter wires the messaging endpoints. Plain
// request/response over persisted rows; clients poll, nothing streams.
func SetupConversationRouter(e *echo.Echo, conversationHandler *handler.ConversationHandler, authMiddleware *middleware.AuthMiddleware) {
	conversationGroup := e.Group("/v1/conversations")
	conversationGroup.Use(authMiddleware.Authenticate)

	conversationGroup.POST("", conversationHandler.StartConversation)
	conversationGroup.GET("", conversationHandler.ListConversations)
	conversationGroup.GET("/:id", conversationHandler.GetConversation)

	conversationGroup.GET("/:id/messages", conversationHandler.ListMessages)
	conversationGroup.POST("/:id/messages", conversationHandler.SendMessage)
}
