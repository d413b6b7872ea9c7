package middleware

import (
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct {
	permissions services.PermissionService
}

func NewAdminMiddleware(permissions services.PermissionService) *AdminMiddleware {
	return &AdminMiddleware{permissions: permissions}
}

// RequireSuperuser gates an endpoint on superuser membership. A failed
// lookup is a server error; a missing row is plain forbidden.
func (m *AdminMiddleware) RequireSuperuser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			userID, ok := common.GetUserIDFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			isSuperuser, err := m.permissions.IsSuperuser(ctx, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Error checking permission")
			}
			if !isSuperuser {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
