package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodexpress/foodexpress-api/internal/api/middleware"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call when the subject id is empty: such
// a token is structurally valid but cannot resolve an account.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.SubjectID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
