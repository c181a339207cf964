package handler

import (
	"shopmart/internal/infrastructure/session"
	"shopmart/internal/infrastructure/websocket"
	"shopmart/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	productHandler *ProductHandler
	cartHandler    *CartHandler
	orderHandler   *OrderHandler
	wsHandler      *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	sessions *session.Manager,
	wsManager *websocket.Manager,
	allowedOrigin string,
) {
	authHandler = NewAuthHandler(authUseCase, sessions, allowedOrigin)
	userHandler = NewUserHandler(userUseCase, sessions)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	wsHandler = NewWebSocketHandler(wsManager, sessions, allowedOrigin)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return wsHandler
}
