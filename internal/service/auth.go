// Package service contains application services for registration, sessions,
// uploads and administration.
package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/crypto"
	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
	"github.com/niteshram69/mind-ai-forge/internal/repository"
	"github.com/niteshram69/mind-ai-forge/internal/token"
)

// RegisterInput carries everything the multi-step form submits. Profile
// fields pass through to storage unchanged.
type RegisterInput struct {
	EmployeeID string
	Email      string
	Password   string
	Profile    model.Profile
}

// Validate runs the required-field rules. Profile attributes are free-form
// and not validated here.
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.EmployeeID, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(1, 72)),
	)
}

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a new user with a hashed password and USER role.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password both come back as errs.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (string, time.Time, *model.User, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	hasher *crypto.Hasher
	tokens *token.Service
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, hasher *crypto.Hasher, tokens *token.Service) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, hasher: hasher, tokens: tokens}
}

// Register validates input, hashes the password and inserts the record.
// Role is always USER here; promotion happens out-of-band.
func (s *AuthServiceImpl) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidation, err)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uid,
		EmployeeID:   in.EmployeeID,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Profile:      in.Profile,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by email and password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, time.Time, *model.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// lookup failures masked as unauthorized to hide account existence
		return "", time.Time{}, nil, errs.ErrUnauthorized
	}
	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		return "", time.Time{}, nil, errs.ErrUnauthorized
	}
	tok, exp, err := s.tokens.Issue(u)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, exp, u, nil
}
