package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// ProductHandler handles catalog and admin product endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the product catalog with filters, sorting and pagination.
func (h *ProductHandler) List(c *gin.Context) {
	params := &service.ListParams{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		IsNew:    c.Query("isNew") == "true",
		Sort:     c.DefaultQuery("sort", "featured"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 50),
	}

	products, total, err := h.productService.List(params)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
	}, params.Page, params.Limit, total)
}

// GetBySlug returns one product.
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Param("slug"))
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch product")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// GetBrands returns the distinct brand list.
func (h *ProductHandler) GetBrands(c *gin.Context) {
	brands, err := h.productService.GetBrands()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch brands")
		return
	}
	utils.Success(c, 200, "Brands retrieved successfully", brands)
}

// Create inserts a new product (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		if err == utils.ErrDuplicateSlug {
			utils.Error(c, 409, "DUPLICATE_SLUG", "Product slug already exists")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}
	utils.Success(c, 201, "Product created successfully", product)
}

// Update rewrites a product by id (admin).
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		switch err {
		case utils.ErrProductNotFound:
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case utils.ErrDuplicateSlug:
			utils.Error(c, 409, "DUPLICATE_SLUG", "Product slug already exists")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		}
		return
	}
	utils.Success(c, 200, "Product updated successfully", product)
}

// Delete removes a product by id (admin).
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	if err := h.productService.Delete(id); err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// queryInt parses a positive integer query parameter with a default.
func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
