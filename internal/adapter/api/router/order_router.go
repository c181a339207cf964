package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
	"shopmart/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	e.POST("/v1/checkout", orderHandler.Checkout, authMiddleware.Authenticate)

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.CancelOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/:id/advance", orderHandler.AdvanceOrder)
}
