package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    uuid.Must(uuid.NewV4()),
		Email: "alice@example.com",
		Role:  model.RoleUser,
	}
}

func TestService_IssueVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	s := NewService([]byte("sign-key"), time.Hour)
	u := testUser()

	raw, exp, err := s.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("token already expired: %v", exp)
	}

	claims, err := s.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != u.Email || claims.Role != u.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != u.ID {
		t.Fatalf("subject mismatch: got %s want %s", id, u.ID)
	}
}

func TestService_Verify_UniformInvalid(t *testing.T) {
	t.Parallel()

	s := NewService([]byte("sign-key"), time.Hour)
	u := testUser()

	good, _, err := s.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Every failure mode must map to the same sentinel.
	cases := map[string]string{
		"malformed": "not.a.jwt",
		"empty":     "",
	}

	// Signature from a different key.
	other := NewService([]byte("other-key"), time.Hour)
	forged, _, err := other.Issue(u)
	if err != nil {
		t.Fatalf("Issue(other): %v", err)
	}
	cases["forged"] = forged

	// Expired token.
	expired := NewService([]byte("sign-key"), -time.Minute)
	old, _, err := expired.Issue(u)
	if err != nil {
		t.Fatalf("Issue(expired): %v", err)
	}
	cases["expired"] = old

	// Valid signature, tampered payload.
	parts := strings.Split(good, ".")
	cases["tampered"] = parts[0] + ".eyJyb2xlIjoiQURNSU4ifQ." + parts[2]

	for name, raw := range cases {
		if _, err := s.Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
			t.Fatalf("%s: want ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestService_Verify_RejectsForeignAlg(t *testing.T) {
	t.Parallel()

	s := NewService([]byte("sign-key"), time.Hour)

	// alg=none with an otherwise plausible payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.Must(uuid.NewV4()).String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := s.Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestService_Verify_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	s := NewService([]byte("sign-key"), time.Hour)
	u := testUser()
	u.Role = model.Role("SUPERUSER")

	raw, _, err := s.Issue(u)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := s.Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for unknown role, got %v", err)
	}
}
