package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	auth.GET("/google", authHandler.GoogleLogin)
	auth.GET("/google/popup", authHandler.GooglePopup)
	auth.GET("/google/callback", authHandler.GoogleCallback)
	auth.POST("/google/callback", authHandler.GoogleExchange)
}
