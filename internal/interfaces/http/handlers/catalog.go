// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
)

// CatalogHandler proxies read-only catalog endpoints to the catalog
// microservice
type CatalogHandler struct {
	catalog *services.CatalogClient
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogClient) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetProducts handles GET /catalog/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), productID)
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetProductsByCategory handles GET /catalog/categories/:id/products
func (h *CatalogHandler) GetProductsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	products, err := h.catalog.ProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetCategories handles GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetOffers handles GET /catalog/offers
func (h *CatalogHandler) GetOffers(c *gin.Context) {
	offers, err := h.catalog.Offers(c.Request.Context())
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Offers retrieved successfully",
		"data":    offers,
	})
}
