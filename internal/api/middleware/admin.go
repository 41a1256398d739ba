package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

// RequireAdmin gates a route to admin-role callers. The role is re-read from
// the user store on every request rather than trusted from the token claims,
// so a demotion takes effect immediately even while older tokens are still
// cryptographically valid. A missing user record is forbidden, not an error.
func RequireAdmin(roles ports.RoleSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			role, err := roles.GetRole(c.Request().Context(), userID)
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				// Store failure, not an authorization decision.
				return err
			}
			if err != nil || role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required.")
			}

			return next(c)
		}
	}
}
