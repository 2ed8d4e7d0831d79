// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartService, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCatalogRoutes sets up product listing and search routes
func SetupCatalogRoutes(rg *gin.RouterGroup, catalogService *catalog.Service, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/suggest", catalogHandler.Suggest)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupNewsletterRoutes sets up the demo newsletter route
func SetupNewsletterRoutes(rg *gin.RouterGroup, log *logrus.Logger) {
	newsletterHandler := handlers.NewNewsletterHandler(log)

	rg.POST("/newsletter", newsletterHandler.Subscribe)
}

// SetupPageRoutes sets up the server-rendered HTML pages
func SetupPageRoutes(engine *gin.Engine, cartService *cart.Service, catalogService *catalog.Service, cfg *config.Config) {
	pagesHandler := handlers.NewPagesHandler(cartService, catalogService, cfg)

	engine.GET("/", pagesHandler.Home)
	engine.GET("/cart", pagesHandler.CartPage)
	engine.POST("/theme", pagesHandler.ToggleTheme)
}
