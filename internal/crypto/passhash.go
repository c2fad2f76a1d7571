// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the cost used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// Hasher wraps bcrypt with an adaptive cost factor. The cost can be raised
// over time without invalidating existing hashes: each stored hash carries
// the cost it was generated with.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher. Costs outside bcrypt's valid range fall
// back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of the plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether the plaintext matches the stored hash.
// A mismatch is (false, nil); any other bcrypt failure (truncated or
// malformed hash) is returned as an error, never as a mismatch.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}
