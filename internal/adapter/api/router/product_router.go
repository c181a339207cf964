package router

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/price-ceiling", productHandler.PriceCeiling)
	products.GET("/:slug", productHandler.GetProduct)

	e.GET("/v1/categories", productHandler.ListCategories)
	e.GET("/v1/collections", productHandler.ListCollections)
}
