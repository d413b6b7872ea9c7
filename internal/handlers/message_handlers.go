package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// MessageHandlers handles the public contact form and its admin inbox.
type MessageHandlers struct {
	messageService services.MessageServiceInterface
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(messageService services.MessageServiceInterface) *MessageHandlers {
	return &MessageHandlers{messageService: messageService}
}

// Submit handles POST /api/messages
func (h *MessageHandlers) Submit(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Body  string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	message, err := h.messageService.Submit(c.Request().Context(), req.Name, req.Email, req.Body)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, message)
}

// List handles GET /api/admin/messages
func (h *MessageHandlers) List(c echo.Context) error {
	limit, offset := parsePagination(c)

	messages, err := h.messageService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}
