package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/artifact"
	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
	"github.com/niteshram69/mind-ai-forge/internal/repository"
)

// MaxIdeaSize is the upload ceiling for idea documents.
const MaxIdeaSize int64 = 5 << 20 // 5 MiB

const ideaContentType = "application/pdf"

// Document is one uploaded file as received from the transport layer.
type Document struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UserService defines the operations a registrant performs on their own record.
type UserService interface {
	// Me returns the caller's record.
	Me(ctx context.Context, id uuid.UUID) (*model.User, error)
	// UploadIdea validates, persists and links one PDF to the caller's
	// record. Storage and the database never disagree: a failed link
	// removes the just-persisted bytes.
	UploadIdea(ctx context.Context, userID uuid.UUID, doc Document) (string, error)
}

type UserServiceImpl struct {
	users repository.UserRepository
	store artifact.Store
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository, store artifact.Store) *UserServiceImpl {
	return &UserServiceImpl{users: users, store: store}
}

// Me loads the caller's own record.
func (s *UserServiceImpl) Me(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	return s.users.GetByID(ctx, id)
}

// UploadIdea runs the validate → persist → link sequence. Validation
// failures never touch storage. The link is scoped to the authenticated
// caller's id and succeeds only while the record has no document yet; on
// any link failure the persisted object is deleted before returning.
func (s *UserServiceImpl) UploadIdea(ctx context.Context, userID uuid.UUID, doc Document) (string, error) {
	if userID == uuid.Nil {
		return "", errors.New("empty user id")
	}
	if doc.Body == nil {
		return "", fmt.Errorf("%w: no file uploaded", errs.ErrValidation)
	}
	if doc.ContentType != ideaContentType {
		return "", fmt.Errorf("%w: only PDF documents are accepted", errs.ErrValidation)
	}
	if doc.Size <= 0 || doc.Size > MaxIdeaSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", errs.ErrValidation, MaxIdeaSize)
	}

	key := artifact.NewKey()
	loc, err := s.store.Save(ctx, key, doc.ContentType, io.LimitReader(doc.Body, MaxIdeaSize), doc.Size)
	if err != nil {
		return "", fmt.Errorf("persist document: %w", err)
	}

	if err := s.users.SetIdeaPDFURLIfEmpty(ctx, userID, loc); err != nil {
		// compensating delete: never leave bytes the database does not reference
		if derr := s.store.Delete(ctx, key); derr != nil {
			return "", errors.Join(err, fmt.Errorf("remove orphaned document %s: %w", key, derr))
		}
		return "", err
	}
	return loc, nil
}
