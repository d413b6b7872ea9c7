package handlers

import (
	"errors"
	"log"
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// respondServiceError maps tagged service errors to HTTP responses. Store
// failures are logged and collapsed into a generic 500.
func respondServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return common.SendClientError(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		return common.SendClientError(c, "Cart is empty, nothing to order")
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, common.CreateErrorResponse("NOT_FOUND", err.Error(), nil))
	case errors.Is(err, services.ErrForbidden):
		return common.SendForbiddenError(c)
	case errors.Is(err, services.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, common.CreateErrorResponse("RATE_LIMITED", "Too many requests", nil))
	default:
		log.Printf("ERROR: %v", err)
		return common.SendServerError(c, "Internal server error")
	}
}
