package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

func TestAdmin_ListAndDelete(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com", Role: model.RoleUser},
	}}
	s := NewAdminService(users)
	ctx := context.Background()

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}

	if err := s.Delete(ctx, uid); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting again is reported distinctly but is not fatal for callers.
	if err := s.Delete(ctx, uid); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound on missing id, got %v", err)
	}
}

func TestAdmin_ExportPDF(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {
			ID:    uuid.Must(uuid.NewV4()),
			Email: "a@example.com",
			Profile: model.Profile{
				FullName:          "Alice",
				Designation:       "Engineer",
				PrimaryTechnology: "Go",
				ExperienceYears:   5,
			},
			IdeaPDFURL: "/uploads/ideas/x.pdf",
		},
	}}
	s := NewAdminService(users)

	b, err := s.ExportPDF(context.Background())
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}

	users.listErr = errors.New("db down")
	if _, err := s.ExportPDF(context.Background()); err == nil {
		t.Fatalf("want propagated repo error")
	}
}
