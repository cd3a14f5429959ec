// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/domain/pricing"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	catalog     *services.CatalogClient
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, catalog *services.CatalogClient) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		catalog:     catalog,
	}
}

// AddItemRequest is the add-to-cart payload
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest adjusts a line quantity by a signed delta
type UpdateItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ApplyCouponRequest carries a user-entered coupon code
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}

// AddItem handles POST /cart/items. The product is checked against the
// catalog for existence and stock before the cart is touched; the line's
// unit price is the catalog price after the user's general discount.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	if product.Stock <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Product is out of stock",
		})
		return
	}
	if req.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Requested quantity exceeds available stock",
			"available_stock": product.Stock,
		})
		return
	}

	benefitPercent := 0
	if user, ok := middleware.GetCurrentUser(c); ok {
		benefitPercent = user.BenefitPercent
	}

	_, err = h.cartService.AddItem(c.Request.Context(), sessionID, session.Item{
		ProductID: product.ProductID,
		Name:      product.Name,
		UnitPrice: pricing.DiscountedUnitPrice(product.Price, benefitPercent),
		Quantity:  req.Quantity,
		ImageRef:  product.ImageRef,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if _, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, productID, req.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if _, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.cartService.ApplyCoupon(c.Request.Context(), sessionID, req.Code); err != nil {
		if errors.Is(err, pricing.ErrUnknownCoupon) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid coupon code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply coupon",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	if err := h.cartService.RemoveCoupon(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove coupon",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data":    h.cartService.Summary(c.Request.Context(), sessionID),
	})
}
