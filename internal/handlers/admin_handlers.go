package handlers

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/repositories"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandlers handles superuser management endpoints.
type AdminHandlers struct {
	permissionService services.PermissionService
	superuserRepo     repositories.SuperuserRepository
}

// NewAdminHandlers creates a new admin handlers instance.
func NewAdminHandlers(permissionService services.PermissionService, superuserRepo repositories.SuperuserRepository) *AdminHandlers {
	return &AdminHandlers{
		permissionService: permissionService,
		superuserRepo:     superuserRepo,
	}
}

// GrantSuperuser handles POST /api/admin/superusers
func (h *AdminHandlers) GrantSuperuser(c echo.Context) error {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	userID, err := common.ValidateUUID(req.UserID, "user_id")
	if err != nil {
		return common.SendValidationError(c, "user_id", err.Error())
	}

	if err := h.permissionService.Grant(c.Request().Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Superuser granted",
	})
}

// RevokeSuperuser handles DELETE /api/admin/superusers/:id
func (h *AdminHandlers) RevokeSuperuser(c echo.Context) error {
	userID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.permissionService.Revoke(c.Request().Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Superuser revoked",
	})
}

// ListSuperusers handles GET /api/admin/superusers
func (h *AdminHandlers) ListSuperusers(c echo.Context) error {
	ids, err := h.superuserRepo.List(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"superusers": ids,
	})
}
