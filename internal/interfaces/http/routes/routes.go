// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/checkout"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/handlers"
	"github.com/vellaperfumeria/storefront-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the handlers depend on
type Services struct {
	Products *product.Service
	Sessions *session.Service
	Checkout *checkout.Service
}

// SetupRoutes registers every API route on rg
func SetupRoutes(rg *gin.RouterGroup, services *Services, cfg *config.Config) {
	SetupCurrencyRoutes(rg)

	// Everything below reads or changes visitor state
	visitor := rg.Group("")
	visitor.Use(middleware.Session(cfg))

	SetupProductRoutes(visitor, services)
	SetupCatalogRoutes(visitor, services)
	SetupCartRoutes(visitor, services)
	SetupSessionRoutes(visitor, services)
	SetupCheckoutRoutes(visitor, services)
}

// SetupCurrencyRoutes sets up currency related routes
func SetupCurrencyRoutes(rg *gin.RouterGroup) {
	currencyHandler := handlers.NewCurrencyHandler()

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", currencyHandler.GetCurrencies)
		currencies.GET("/format", currencyHandler.FormatAmount)
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, services *Services) {
	productHandler := handlers.NewProductHandler(services.Products, services.Sessions)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCatalogRoutes sets up the interactive catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, services *Services) {
	catalogHandler := handlers.NewCatalogHandler(services.Sessions)

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/pages", catalogHandler.GetPages)
		catalog.GET("/pages/:index", catalogHandler.GetPage)
		catalog.POST("/pages/:index/loaded", catalogHandler.MarkLoaded)
		catalog.POST("/pages/:index/hotspots/:hotspot/activate", catalogHandler.ActivateHotspot)
		catalog.POST("/navigate", catalogHandler.Navigate)
		catalog.POST("/next", catalogHandler.NextPage)
		catalog.POST("/previous", catalogHandler.PreviousPage)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, services *Services) {
	cartHandler := handlers.NewCartHandler(services.Sessions)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.POST("/open", cartHandler.OpenCart)
		cart.POST("/close", cartHandler.CloseCart)
	}
}

// SetupSessionRoutes sets up visitor session routes
func SetupSessionRoutes(rg *gin.RouterGroup, services *Services) {
	sessionHandler := handlers.NewSessionHandler(services.Sessions, services.Checkout)

	sess := rg.Group("/session")
	{
		sess.GET("", sessionHandler.GetSession)
		sess.PUT("/currency", sessionHandler.SetCurrency)
		sess.PUT("/view", sessionHandler.SetView)
		sess.POST("/restore", sessionHandler.Restore)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, services *Services) {
	checkoutHandler := handlers.NewCheckoutHandler(services.Checkout)

	orders := rg.Group("/checkout")
	{
		orders.GET("/summary", checkoutHandler.GetCheckoutSummary)
		orders.POST("/handoff", checkoutHandler.Handoff)
	}
}
