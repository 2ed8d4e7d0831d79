// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product listing, detail, and search suggestions
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		config:         cfg,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	if !h.catalogService.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not loaded yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalogService.Products(),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	if !h.catalogService.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not loaded yet",
		})
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, found := h.catalogService.ProductByID(productID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// Suggest handles GET /products/suggest?q=
func (h *CatalogHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	suggestions := h.catalogService.Suggest(query, h.config.Catalog.SuggestLimit)
	if suggestions == nil {
		suggestions = []catalog.Suggestion{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Suggestions retrieved successfully",
		"data":    suggestions,
	})
}
