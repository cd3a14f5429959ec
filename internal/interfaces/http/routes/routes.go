// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/domain/order"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
	"github.com/your-org/storefront-bff/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// Clients bundles the remote microservice clients
type Clients struct {
	Auth    *services.AuthClient
	Catalog *services.CatalogClient
	Orders  *services.OrdersClient
}

// SetupRoutes wires all storefront routes
func SetupRoutes(rg *gin.RouterGroup, store *session.Store, clients Clients, cfg *config.Config) {
	cartService := cart.NewService(store)
	orderService := order.NewService(store, clients.Orders)

	authHandler := handlers.NewAuthHandler(clients.Auth, store, cfg)
	catalogHandler := handlers.NewCatalogHandler(clients.Catalog)
	cartHandler := handlers.NewCartHandler(cartService, clients.Catalog)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Auth endpoints
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/logout", authHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.RequireUser(store))
		{
			protected.GET("/me", authHandler.Me)
		}
	}

	// Catalog endpoints, public reads proxied to the catalog service
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", catalogHandler.GetProducts)
		catalog.GET("/products/:id", catalogHandler.GetProduct)
		catalog.GET("/categories", catalogHandler.GetCategories)
		catalog.GET("/categories/:id/products", catalogHandler.GetProductsByCategory)
		catalog.GET("/offers", catalogHandler.GetOffers)
	}

	// Cart endpoints require a logged-in session, like the storefront
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.RequireUser(store))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", cartHandler.RemoveCoupon)
	}

	// Checkout and order history require a logged-in session
	orders := rg.Group("")
	orders.Use(middleware.RequireUser(store))
	{
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("/orders", orderHandler.GetOrders)
	}
}
