package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandlers handles HTTP requests for product categories.
type CategoryHandlers struct {
	categoryService services.CategoryService
}

// NewCategoryHandlers creates a new category handlers instance.
func NewCategoryHandlers(categoryService services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categoryService: categoryService}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// GetCategory handles GET /api/categories/:id
func (h *CategoryHandlers) GetCategory(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/admin/categories
func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := h.categoryService.Rename(c.Request().Context(), id, req.Name); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Category updated",
	})
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Category deleted",
	})
}
