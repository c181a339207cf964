package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e)
	SetupCartRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
