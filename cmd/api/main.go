package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shopmart/internal/adapter/api"
	"shopmart/internal/adapter/api/handler"
	apimiddleware "shopmart/internal/adapter/api/middleware"
	"shopmart/internal/adapter/api/router"
	"shopmart/internal/adapter/repository"
	"shopmart/internal/infrastructure/event"
	"shopmart/internal/infrastructure/google"
	"shopmart/internal/infrastructure/session"
	"shopmart/internal/infrastructure/websocket"
	"shopmart/internal/usecase"
	"shopmart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Mock catalog; swap these constructors for real stores when one exists.
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	categoryRepo := repository.NewMemoryCategoryRepository(repository.SeedCategories())
	collectionRepo := repository.NewMemoryCollectionRepository(repository.SeedCollections())
	userRepo := repository.NewMemoryUserRepository()
	cartRepo := repository.NewMemoryCartRepository()
	orderRepo := repository.NewMemoryOrderRepository()

	sessions := session.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTL)*time.Second)
	googleClient := google.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	bus := event.NewBus()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	mockDelay := time.Duration(cfg.MockDelayMs) * time.Millisecond

	authUseCase := usecase.NewAuthUseCase(userRepo, sessions, googleClient, bus, mockDelay)
	userUseCase := usecase.NewUserUseCase(userRepo, productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, collectionRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, cfg.ShippingFlatFee, cfg.TaxRate)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartRepo, cfg.ShippingFlatFee, cfg.TaxRate, mockDelay)

	// Logout fan-out: the cart empties and every open tab gets a push.
	cartUseCase.SubscribeLogout(bus)
	bus.SubscribeLogout(func(e event.LogoutEvent) {
		wsManager.SendToUser(e.UserID, websocket.Event{Type: websocket.EventSessionRevoked})
	})

	handler.Setup(authUseCase, userUseCase, productUseCase, cartUseCase, orderUseCase, sessions, wsManager, cfg.AllowedOrigin)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: true,
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(sessions)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	pageGate := apimiddleware.NewPageGateMiddleware(sessions)

	// The gate runs before routing so protected page paths redirect to the
	// login page instead of 401ing.
	e.Pre(pageGate.Gate)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
