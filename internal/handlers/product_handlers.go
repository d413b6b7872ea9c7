package handlers

import (
	"context"
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/models"
	"threadmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxImageUploadBytes = 10 << 20

// ProductHandlers handles HTTP requests for the product catalog.
type ProductHandlers struct {
	productService services.ProductServiceInterface
}

// NewProductHandlers creates a new product handlers instance.
func NewProductHandlers(productService services.ProductServiceInterface) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// ListProducts handles GET /api/products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := &models.ProductFilter{Query: c.QueryParam("q")}
	filter.Limit, filter.Offset = parsePagination(c)

	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := common.ValidateUUID(raw, "category_id")
		if err != nil {
			return common.SendValidationError(c, "category_id", err.Error())
		}
		filter.CategoryID = &id
	}
	if raw := c.QueryParam("size_id"); raw != "" {
		id, err := common.ValidateUUID(raw, "size_id")
		if err != nil {
			return common.SendValidationError(c, "size_id", err.Error())
		}
		filter.SizeID = &id
	}

	products, err := h.productService.ListProducts(ctx, filter)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	product, err := h.productService.GetProduct(ctx, productID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/admin/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.productService.CreateProduct(ctx, product); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Price       float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := &models.Product{
		ID:          productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.productService.UpdateProduct(ctx, product); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated",
	})
}

// DeleteProduct handles DELETE /api/admin/products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted",
	})
}

// UploadImage handles POST /api/admin/products/:id/image
func (h *ProductHandlers) UploadImage(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return common.SendClientError(c, "image file is required")
	}
	if fileHeader.Size > maxImageUploadBytes {
		return common.SendClientError(c, "image exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.productService.UploadImage(ctx, productID, contentType, file, fileHeader.Size); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Image uploaded",
	})
}

// AttachCategory handles POST /api/admin/products/:id/categories/:categoryID
func (h *ProductHandlers) AttachCategory(c echo.Context) error {
	return h.bridge(c, "categoryID", h.productService.AttachCategory, "Category attached")
}

// DetachCategory handles DELETE /api/admin/products/:id/categories/:categoryID
func (h *ProductHandlers) DetachCategory(c echo.Context) error {
	return h.bridge(c, "categoryID", h.productService.DetachCategory, "Category detached")
}

// AttachSize handles POST /api/admin/products/:id/sizes/:sizeID
func (h *ProductHandlers) AttachSize(c echo.Context) error {
	return h.bridge(c, "sizeID", h.productService.AttachSize, "Size attached")
}

// DetachSize handles DELETE /api/admin/products/:id/sizes/:sizeID
func (h *ProductHandlers) DetachSize(c echo.Context) error {
	return h.bridge(c, "sizeID", h.productService.DetachSize, "Size detached")
}

func (h *ProductHandlers) bridge(c echo.Context, param string, op func(ctx context.Context, productID, otherID uuid.UUID) error, message string) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	otherID, err := common.ValidateUUID(c.Param(param), param)
	if err != nil {
		return common.SendValidationError(c, param, err.Error())
	}

	if err := op(ctx, productID, otherID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": message,
	})
}
