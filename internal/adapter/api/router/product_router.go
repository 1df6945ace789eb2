package router

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/adapter/api/handler"
	"artisanmarket/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler, authMiddleware *middleware.AuthMiddleware) {
	productGroup := e.Group("/v1/products")
	productGroup.Use(authMiddleware.Authenticate)

	productGroup.PUT("/:id/image", productHandler.UpdateProductImage)
	productGroup.POST("/:id/image", productHandler.UploadProductImage)
}
