// Package token issues and verifies the signed identity tokens that
// carry a subject id and role across requests. Tokens are stateless:
// there is no refresh flow and no server-side revocation, the only
// server state is the signing secret loaded from configuration.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

const DefaultTTL = time.Hour

// The three rejection modes are distinct values so logs and tests can
// tell them apart; the auth middleware treats all of them as a rejected
// token.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenMalformed = errors.New("token malformed")

// Claims is the JWT payload: registered claims (sub, iat, exp) plus the
// account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Service signs and verifies identity tokens with a symmetric secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, valid for the service TTL.
func (s *Service) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: identity.Role,
	})
	return t.SignedString(s.secret)
}

// Verify decodes tokenString, checks the signature and the expiry, and
// returns the embedded identity. Failures map to exactly one of
// ErrTokenExpired, ErrTokenSignature, or ErrTokenMalformed.
func (s *Service) Verify(tokenString string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, ErrTokenSignature
		default:
			return domain.Identity{}, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return domain.Identity{}, ErrTokenMalformed
	}

	return domain.Identity{SubjectID: claims.Subject, Role: claims.Role}, nil
}
