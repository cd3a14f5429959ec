// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/order"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order history endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout handles POST /checkout. Validation failures are rejected locally
// without contacting the orders service; remote failures leave the cart and
// coupon untouched so the user can retry.
func (h *OrderHandler) Checkout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	submission, err := h.orderService.Submit(c.Request.Context(), sessionID)
	if err != nil {
		var validation *order.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": validation.Reason,
			})
			return
		}

		// Remote failure: the submission records the classified reason
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     submission.FailureReason,
			"retryable": submission.Retryable,
			"data":      submission,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    submission,
	})
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	orders, err := h.orderService.History(c.Request.Context(), sessionID)
	if err != nil {
		var validation *order.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": validation.Reason,
			})
			return
		}
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}
