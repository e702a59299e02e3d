// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/product"
	"github.com/vellaperfumeria/storefront-backend/internal/domain/session"
	"github.com/vellaperfumeria/storefront-backend/internal/pkg/currency"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
	sessions       *session.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service, sessions *session.Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		sessions:       sessions,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req product.ProductListRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	code, ok := h.displayCurrency(c)
	if !ok {
		return
	}

	products, err := h.productService.GetProducts(&req)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    product.NewProductResponses(products, code),
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	code, ok := h.displayCurrency(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data":    product.NewProductResponses(h.productService.GetFeatured(), code),
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    product.Categories,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	code, ok := h.displayCurrency(c)
	if !ok {
		return
	}

	p, err := h.productService.GetProduct(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product.NewProductResponse(p, code),
	})
}

// displayCurrency picks the ?currency= override or the session currency
func (h *ProductHandler) displayCurrency(c *gin.Context) (currency.Code, bool) {
	if raw := c.Query("currency"); raw != "" {
		code, err := currency.Parse(raw)
		if err != nil {
			respondError(c, err, "")
			return "", false
		}
		return code, true
	}

	snap, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to load session")
		return "", false
	}
	return snap.Currency, true
}
