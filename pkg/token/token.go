// Package token implements the stateless bearer-credential flow: a pure
// claims-to-token signer and its inverse. There is no revocation list and no
// refresh-token exchange; a token is valid until it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/taskflow/backend/domain"
)

var (
	ErrTokenInvalid = domain.NewError(domain.ErrCodeUnauthorized, "invalid token")
	ErrTokenExpired = domain.NewError(domain.ErrCodeUnauthorized, "token expired")
)

// Claims is the payload embedded in a signed bearer credential.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer credentials.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// New builds a token service. ttl defaults to 24h.
func New(secret, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue produces a signed, time-bounded credential for the given identity.
func (s *Service) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Expired and otherwise-invalid tokens differ in message only; both map to
// Unauthorized at the transport boundary.
func (s *Service) Verify(tokenString string) (domain.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return domain.Identity{}, ErrTokenInvalid
	}
	return domain.Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// TTL exposes the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
