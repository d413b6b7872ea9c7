package handlers

import (
	"net/http"
	"strconv"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for orders.
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandlers creates a new order handlers instance.
func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		Items []struct {
			ProductID string  `json:"product_id"`
			SizeID    *string `json:"size_id"`
			Quantity  int     `json:"quantity"`
		} `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "at least one item is required")
	}

	inputs := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := common.ValidateUUID(item.ProductID, "product_id")
		if err != nil {
			return common.SendValidationError(c, "product_id", err.Error())
		}
		var sizeID *uuid.UUID
		if item.SizeID != nil && common.SafeString(item.SizeID) != "" {
			id, err := common.ValidateUUID(*item.SizeID, "size_id")
			if err != nil {
				return common.SendValidationError(c, "size_id", err.Error())
			}
			sizeID = &id
		}
		inputs = append(inputs, services.OrderItemInput{
			ProductID: productID,
			SizeID:    sizeID,
			Quantity:  item.Quantity,
		})
	}

	confirmation, err := h.orderService.CreateOrder(ctx, userID, inputs)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, confirmation)
}

// ListMyOrders handles GET /api/orders
func (h *OrderHandlers) ListMyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := parsePagination(c)

	orders, err := h.orderService.ListUserOrders(ctx, userID, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	confirmation, err := h.orderService.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, confirmation)
}

// ListAllOrders handles GET /api/admin/orders
func (h *OrderHandlers) ListAllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)

	orders, err := h.orderService.ListAllOrders(ctx, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

// UpdateStatus handles PUT /api/admin/orders/:id/status
func (h *OrderHandlers) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		OrderStatus string `json:"order_status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.orderService.UpdateStatus(ctx, orderID, req.OrderStatus); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order status updated",
	})
}

// parsePagination reads limit/offset query params with sane fallbacks.
func parsePagination(c echo.Context) (int, int) {
	limit := 50
	offset := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
