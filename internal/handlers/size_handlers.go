package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// SizeHandlers handles HTTP requests for garment sizes.
type SizeHandlers struct {
	sizeService services.SizeService
}

// NewSizeHandlers creates a new size handlers instance.
func NewSizeHandlers(sizeService services.SizeService) *SizeHandlers {
	return &SizeHandlers{sizeService: sizeService}
}

// ListSizes handles GET /api/sizes
func (h *SizeHandlers) ListSizes(c echo.Context) error {
	sizes, err := h.sizeService.List(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sizes": sizes,
	})
}

// CreateSize handles POST /api/admin/sizes
func (h *SizeHandlers) CreateSize(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	size, err := h.sizeService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, size)
}

// UpdateSize handles PUT /api/admin/sizes/:id
func (h *SizeHandlers) UpdateSize(c echo.Context) error {
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
	if err := h.sizeService.Rename(c.Request().Context(), id, req.Name); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Size updated",
	})
}

// DeleteSize handles DELETE /api/admin/sizes/:id
func (h *SizeHandlers) DeleteSize(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.sizeService.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Size deleted",
	})
}
