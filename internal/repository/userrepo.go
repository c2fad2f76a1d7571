// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/model"
)

// UserRepository provides access to credential records. Uniqueness of
// email and employee id is enforced by the database; concurrent Create
// calls need no application-level locking.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// email or employee id is already taken, with no partial write.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by record id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// SetIdeaPDFURLIfEmpty links an uploaded document, but only while the
	// record has none. Returns errs.ErrAlreadyExists otherwise.
	SetIdeaPDFURLIfEmpty(ctx context.Context, id uuid.UUID, url string) error
	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)
	// ListByName returns all users ordered by full name, for the export report.
	ListByName(ctx context.Context) ([]model.User, error)
	// Delete removes a user. Returns errs.ErrNotFound for an unknown id.
	Delete(ctx context.Context, id uuid.UUID) error
	// PromoteToAdmin flips the role to ADMIN. Reachable only from the
	// promote CLI; no HTTP handler calls it.
	PromoteToAdmin(ctx context.Context, email string) error
}
