// internal/infrastructure/services/catalog.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// CatalogClient talks to the catalog microservice
type CatalogClient struct {
	*apiClient
}

// NewCatalogClient creates a new catalog service client
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		apiClient: newAPIClient("catalog", baseURL, timeout),
	}
}

// Product is the catalog product shape consumed by the storefront
type Product struct {
	ProductID   int64  `json:"idProducto"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	SKU         string `json:"codigoSku,omitempty"`
	Price       int64  `json:"precio"`
	Stock       int    `json:"stock"`
	ImageRef    string `json:"urlImagen"`
	CategoryID  int64  `json:"idCategoria,omitempty"`
}

// Category is a catalog product category
type Category struct {
	CategoryID int64  `json:"idCategoria"`
	Name       string `json:"nombre"`
}

// Offer is an active promotional offer from the catalog
type Offer struct {
	ProductID     int64  `json:"idProducto"`
	Name          string `json:"nombre"`
	NormalPrice   int64  `json:"precioNormal"`
	OfferPrice    int64  `json:"precioOferta"`
	OfferPercent  int    `json:"porcentajeOferta"`
	ImageRef      string `json:"urlImagen"`
}

// Products lists all products
func (c *CatalogClient) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.callJSON(ctx, http.MethodGet, "/productos", nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by ID
func (c *CatalogClient) Product(ctx context.Context, productID int64) (*Product, error) {
	var product Product
	endpoint := fmt.Sprintf("/productos/%d", productID)
	if err := c.callJSON(ctx, http.MethodGet, endpoint, nil, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductsByCategory lists products belonging to a category
func (c *CatalogClient) ProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	var products []Product
	endpoint := fmt.Sprintf("/productos/categoria/%d", categoryID)
	if err := c.callJSON(ctx, http.MethodGet, endpoint, nil, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories lists all product categories
func (c *CatalogClient) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.callJSON(ctx, http.MethodGet, "/categorias", nil, "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Offers lists the currently active promotional offers
func (c *CatalogClient) Offers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.callJSON(ctx, http.MethodGet, "/productos/ofertas", nil, "", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
