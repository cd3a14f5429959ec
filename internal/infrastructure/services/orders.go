// internal/infrastructure/services/orders.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OrdersClient talks to the orders microservice
type OrdersClient struct {
	*apiClient
}

// NewOrdersClient creates a new orders service client
func NewOrdersClient(baseURL string, timeout time.Duration) *OrdersClient {
	return &OrdersClient{
		apiClient: newAPIClient("orders", baseURL, timeout),
	}
}

// OrderLine is one line of an order payload
type OrderLine struct {
	ProductIDRef int64  `json:"idProductoRef"`
	Name         string `json:"nombreProducto"`
	UnitPrice    int64  `json:"precioUnitario"`
	Quantity     int    `json:"cantidad"`
}

// CreateOrderRequest is the order payload the orders service expects
type CreateOrderRequest struct {
	UserIDRef int64       `json:"idUsuarioRef"`
	Total     int64       `json:"total"`
	Lines     []OrderLine `json:"detalles"`
}

// Order is a previously placed order as returned by the orders service
type Order struct {
	OrderID int64       `json:"idPedido"`
	Status  string      `json:"estado"`
	Date    string      `json:"fecha"`
	Total   int64       `json:"total"`
	Lines   []OrderLine `json:"detalles"`
}

// Create submits an order. The orders service answers with a plain-text
// confirmation message carrying the new order ID.
func (c *OrdersClient) Create(ctx context.Context, authToken string, req *CreateOrderRequest) (string, error) {
	respBody, err := c.call(ctx, http.MethodPost, "", req, authToken)
	if err != nil {
		return "", err
	}

	confirmation := strings.TrimSpace(string(respBody))
	if confirmation == "" {
		confirmation = fmt.Sprintf("Order created for user %d", req.UserIDRef)
	}
	return confirmation, nil
}

// ListByUser returns the order history for a user, newest first is the
// caller's concern. A 404 means the user simply has no orders yet.
func (c *OrdersClient) ListByUser(ctx context.Context, authToken string, userID int64) ([]Order, error) {
	var orders []Order
	endpoint := fmt.Sprintf("/usuario/%d", userID)
	err := c.callJSON(ctx, http.MethodGet, endpoint, nil, authToken, &orders)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) && rejected.StatusCode == http.StatusNotFound {
			return []Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}
