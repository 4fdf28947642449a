package handlers

import (
	"net/http"

	"avtoelon/internal/common"
	"avtoelon/internal/models"
	"avtoelon/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandlers handles category-related HTTP requests
type CategoryHandlers struct {
	categoryService services.CategoryService
}

// NewCategoryHandlers creates a new category handlers instance
func NewCategoryHandlers(categoryService services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

// ListCategories returns all categories, newest first
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory handles creating a new category
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return common.NewValidationError("invalid request body")
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}
