package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/repository"
	"github.com/primehood/supplies-api/internal/utils"
)

// CategoryHandler serves the category list.
type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categoryRepo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List returns all categories with their product counts.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to fetch categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved successfully", categories)
}
