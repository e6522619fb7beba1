package router

import (
	"storefront/internal/middleware"
	"storefront/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID, middleware.OptionalAuth())
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler) {
	cart := api.Group("/cart-items", middleware.AuthMiddleware())
	cart.GET("", handler.GetCart)
	cart.POST("", handler.AddItem)
	cart.DELETE("/:productId", handler.RemoveItem)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())
	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetOrders)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend, middleware.OptionalAuth())
	reco.POST("/evaluate", handler.Evaluate)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler) {
	categories := api.Group("/categories")
	categories.GET("", handler.GetAllCategories)
}
