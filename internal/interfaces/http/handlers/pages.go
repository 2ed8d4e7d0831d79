// internal/interfaces/http/handlers/pages.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

const themeCookie = "theme"

// PagesHandler renders the server-side HTML pages
type PagesHandler struct {
	cartService    *cart.Service
	catalogService *catalog.Service
	config         *config.Config
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(cartService *cart.Service, catalogService *catalog.Service, cfg *config.Config) *PagesHandler {
	return &PagesHandler{
		cartService:    cartService,
		catalogService: catalogService,
		config:         cfg,
	}
}

// Home handles GET /
func (h *PagesHandler) Home(c *gin.Context) {
	var products []catalog.Product
	if h.catalogService.Ready() {
		products = h.catalogService.Products()
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":    h.config.App.Name,
		"Theme":    currentTheme(c),
		"Products": products,
	})
}

// CartPage handles GET /cart for browsers. The page is rebuilt in full from
// current cart state on every request; rendering is deferred until the
// catalog snapshot is available. If the catalog never loads the request runs
// into its timeout instead of a dedicated error state.
func (h *PagesHandler) CartPage(c *gin.Context) {
	select {
	case <-h.catalogService.ReadyCh():
	case <-c.Request.Context().Done():
		c.String(http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}

	cartID := getOrCreateCartID(c, h.config)
	view := h.cartService.BuildView(h.cartService.Cart(c.Request.Context(), cartID))

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title": "Your Cart",
		"Theme": currentTheme(c),
		"View":  view,
	})
}

// ToggleTheme handles POST /theme, flipping the theme preference cookie
func (h *PagesHandler) ToggleTheme(c *gin.Context) {
	theme := "dark"
	if currentTheme(c) == "dark" {
		theme = "light"
	}
	c.SetCookie(themeCookie, theme, 365*24*60*60, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme updated successfully",
		"data": gin.H{
			"theme": theme,
		},
	})
}

func currentTheme(c *gin.Context) string {
	theme, err := c.Cookie(themeCookie)
	if err != nil || theme != "dark" {
		return "light"
	}
	return "dark"
}
