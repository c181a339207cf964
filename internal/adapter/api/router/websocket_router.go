package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()

	e.GET("/ws/session", wsHandler.SessionChannel)
}
