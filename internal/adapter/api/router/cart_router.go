package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
	"shopmart/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)

	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:productId", cartHandler.SetQuantity)
	cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
