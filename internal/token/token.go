// Package token issues and verifies signed session tokens.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

// Claims are the statements carried by a session token: record id (sub),
// email and role, plus the standard issuance/expiry claims.
type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a record id.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.FromString(c.Subject)
	if err != nil {
		return uuid.Nil, errs.ErrInvalidToken
	}
	return id, nil
}

// Service signs and verifies HS256 bearer tokens. Verification is a pure
// computation: signature check plus clock comparison, no I/O.
type Service struct {
	signKey []byte
	ttl     time.Duration
}

// NewService constructs a token service. An empty signing key must be
// rejected by the caller before this point (the server refuses to start).
func NewService(signKey []byte, ttl time.Duration) *Service {
	return &Service{signKey: signKey, ttl: ttl}
}

// Issue creates a signed token for the user, valid for the configured TTL.
func (s *Service) Issue(u *model.User) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	claims := Claims{
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// Verify decodes and validates a token. Every failure mode collapses into
// errs.ErrInvalidToken so responses cannot be used to probe which check
// failed.
func (s *Service) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errs.ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
