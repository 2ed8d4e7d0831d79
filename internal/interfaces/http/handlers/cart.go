// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		config:      cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest represents update cart item request. Quantity is the
// raw value of the quantity input field; it may arrive as a JSON number or a
// string and is validated by the cart engine, not here.
type UpdateCartItemRequest struct {
	Quantity any `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	current := h.cartService.Cart(c.Request.Context(), cartID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartService.BuildView(current),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Quantity is optional and defaults to one
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	updated, err := h.cartService.AddItem(c.Request.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartService.BuildView(updated),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.cartService.SetQuantity(c.Request.Context(), cartID, productID, rawQuantity(req.Quantity))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartService.BuildView(updated),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	updated, err := h.cartService.RemoveItem(c.Request.Context(), cartID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartService.BuildView(updated),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	if err := h.cartService.Clear(c.Request.Context(), cartID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	cartID := h.getOrCreateCartID(c)

	current := h.cartService.Cart(c.Request.Context(), cartID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": current.ItemCount(),
		},
	})
}

func (h *CartHandler) getOrCreateCartID(c *gin.Context) string {
	return getOrCreateCartID(c, h.config)
}

// getOrCreateCartID gets the cart session id from its cookie or mints a new
// one. The cookie lives as long as the cart retention window.
func getOrCreateCartID(c *gin.Context, cfg *config.Config) string {
	cartID, err := c.Cookie(cfg.Cart.CookieName)
	if err != nil || cartID == "" {
		cartID = uuid.New().String()
		c.SetCookie(cfg.Cart.CookieName, cartID, int(cfg.Cart.Retention.Seconds()), "/", "", false, true)
	}

	return cartID
}

// parseProductID parses the :id route parameter, writing the error response
// itself on failure.
func parseProductID(c *gin.Context) (uint, bool) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return uint(productID), true
}

// rawQuantity renders the bound quantity value back to the raw string the
// cart engine parses. JSON numbers arrive as float64.
func rawQuantity(v any) string {
	switch q := v.(type) {
	case string:
		return q
	case float64:
		return strconv.FormatFloat(q, 'f', -1, 64)
	default:
		return ""
	}
}
