package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandlers handles HTTP requests for the shopping cart, including the
// place-order endpoint.
type CartHandlers struct {
	cartService  services.CartServiceInterface
	orderService services.OrderServiceInterface
}

// NewCartHandlers creates a new cart handlers instance.
func NewCartHandlers(cartService services.CartServiceInterface, orderService services.OrderServiceInterface) *CartHandlers {
	return &CartHandlers{
		cartService:  cartService,
		orderService: orderService,
	}
}

// AddItem handles POST /api/cart
func (h *CartHandlers) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		ProductID string  `json:"product_id"`
		SizeID    *string `json:"size_id"`
		Quantity  int     `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	productID, err := common.ValidateUUID(req.ProductID, "product_id")
	if err != nil {
		return common.SendValidationError(c, "product_id", err.Error())
	}

	var sizeID *uuid.UUID
	if req.SizeID != nil && common.SafeString(req.SizeID) != "" {
		id, err := common.ValidateUUID(*req.SizeID, "size_id")
		if err != nil {
			return common.SendValidationError(c, "size_id", err.Error())
		}
		sizeID = &id
	}

	item, err := h.cartService.AddItem(ctx, userID, productID, sizeID, req.Quantity)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Item added to cart",
		"cart_item": item,
	})
}

// ListItems handles GET /api/cart
func (h *CartHandlers) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	items, err := h.cartService.ListItems(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"cart": items,
	})
}

// RemoveItem handles DELETE /api/cart/:id
func (h *CartHandlers) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.cartService.RemoveItem(ctx, userID, itemID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Cart item deleted",
	})
}

// Clear handles DELETE /api/cart
func (h *CartHandlers) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	if err := h.cartService.Clear(ctx, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Cart cleared",
	})
}

// PlaceOrder handles POST /api/cart/place-order
func (h *CartHandlers) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendClientError(c, "user_id is required")
	}

	confirmation, err := h.orderService.PlaceOrder(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, confirmation)
}
