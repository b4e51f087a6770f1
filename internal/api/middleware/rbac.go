package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin allows the request through only when the attached
// identity carries the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || !identity.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}

// RequireOwnerOrAdmin allows admins through unconditionally and other
// identities only when their subject id matches the :id path parameter.
func RequireOwnerOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !identity.IsOwnerOrAdmin(c.Param("id")) {
				return echo.NewHTTPError(http.StatusForbidden, "owner or admin required")
			}
			return next(c)
		}
	}
}
