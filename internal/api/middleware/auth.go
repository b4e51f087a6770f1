package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/foodexpress/foodexpress-api/internal/api/metrics"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/pkg/token"
)

// identityKey is the echo context key the decoded identity is stored
// under. Handlers read it through IdentityFrom.
const identityKey = "identity"

// Auth extracts the bearer token, verifies it, and injects the decoded
// identity into the request context. A missing or unusable header is
// 401 (no credential presented); a token that fails verification is 403
// (credential presented and rejected), matching the historical split.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireSubject is the strict variant of the gate: the attached
// identity must carry a non-empty subject id, so downstream lookups can
// resolve an account. Runs after Auth.
func RequireSubject() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok || identity.SubjectID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// rejectReason maps a token verification error to a metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		return "expired"
	case errors.Is(err, token.ErrTokenSignature):
		return "signature"
	default:
		return "malformed"
	}
}
