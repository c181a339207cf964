package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
	"shopmart/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.GetProfile)
	me.PATCH("", userHandler.UpdateProfile)
	me.POST("/viewed/:productId", userHandler.TrackViewed)
	me.POST("/saved/:productId", userHandler.ToggleSaved)
}
