package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	productpkg "github.com/bun612/shop-api/product"
)

const requestTimeout = 10 * time.Second

// parseID reads the :id path parameter; on failure it writes the 400 response
// itself and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id64), true
}

// ProductHandler bundles dependencies for product-related HTTP handlers.
type ProductHandler struct {
	service productpkg.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(svc productpkg.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

type productPayload struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func (p *productPayload) toRequest() productpkg.ProductRequest {
	return productpkg.ProductRequest{
		Name:        p.Name,
		Price:       *p.Price,
		Image:       p.Image,
		Description: p.Description,
	}
}

func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		products, err := h.service.ListProducts(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		p, err := h.service.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, productpkg.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		created, err := h.service.CreateProduct(ctx, p.toRequest())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "product created", "id": created.ID})
	}
}

func (h *ProductHandler) UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var p productPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := h.service.UpdateProduct(ctx, id, p.toRequest()); err != nil {
			if errors.Is(err, productpkg.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product updated"})
	}
}

func (h *ProductHandler) DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		if err := h.service.DeleteProduct(ctx, id); err != nil {
			switch {
			case errors.Is(err, productpkg.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, productpkg.ErrProductInUse):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

// SeedData resets the shop tables and loads the sample catalog.
func (h *ProductHandler) SeedData() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		count, err := h.service.SeedSampleData(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize sample data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "sample data initialized", "count": count})
	}
}
