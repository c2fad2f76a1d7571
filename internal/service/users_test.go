package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/artifact"
	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

type fakeStore struct {
	saveErr   error
	deleteErr error

	saved   map[string][]byte
	deleted []string
}

var _ artifact.Store = (*fakeStore)(nil)

func (f *fakeStore) Save(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[key] = b
	return "/uploads/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, key)
	return nil
}

func pdfDoc(body string) Document {
	return Document{
		Name:        "idea.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestUsers_Me(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com", Role: model.RoleUser},
	}}
	s := NewUserService(users, &fakeStore{})

	u, err := s.Me(context.Background(), uid)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if u.Email != "a@example.com" {
		t.Fatalf("wrong user: %+v", u)
	}

	if _, err := s.Me(context.Background(), uuid.Nil); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for nil id, got %v", err)
	}
	if _, err := s.Me(context.Background(), uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown id, got %v", err)
	}
}

func TestUsers_UploadIdea_ValidationNeverTouchesStorage(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	store := &fakeStore{}
	s := NewUserService(users, store)
	ctx := context.Background()

	cases := []struct {
		name string
		doc  Document
	}{
		{"no body", Document{Name: "x.pdf", ContentType: "application/pdf", Size: 10}},
		{"wrong type", Document{Name: "x.png", ContentType: "image/png", Size: 10, Body: strings.NewReader("x")}},
		{"oversized", Document{Name: "x.pdf", ContentType: "application/pdf", Size: MaxIdeaSize + 1, Body: strings.NewReader("x")}},
		{"empty", Document{Name: "x.pdf", ContentType: "application/pdf", Size: 0, Body: strings.NewReader("")}},
	}
	for _, tc := range cases {
		if _, err := s.UploadIdea(ctx, uid, tc.doc); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", tc.name, err)
		}
	}
	if len(store.saved) != 0 || len(store.deleted) != 0 || users.setURLCalls != 0 {
		t.Fatalf("validation failure touched storage or db: %+v calls=%d", store, users.setURLCalls)
	}
}

func TestUsers_UploadIdea_Success(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	store := &fakeStore{}
	s := NewUserService(users, store)

	loc, err := s.UploadIdea(context.Background(), uid, pdfDoc("%PDF-1.4 idea"))
	if err != nil {
		t.Fatalf("UploadIdea: %v", err)
	}
	if !strings.HasPrefix(loc, "/uploads/ideas/") {
		t.Fatalf("unexpected location: %q", loc)
	}
	if got := users.byEmail["a@example.com"].IdeaPDFURL; got != loc {
		t.Fatalf("record link=%q, want %q", got, loc)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one stored object, got %d", len(store.saved))
	}
	for _, b := range store.saved {
		if !bytes.Equal(b, []byte("%PDF-1.4 idea")) {
			t.Fatalf("stored bytes differ")
		}
	}
}

func TestUsers_UploadIdea_SecondUploadConflicts(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	store := &fakeStore{}
	s := NewUserService(users, store)
	ctx := context.Background()

	if _, err := s.UploadIdea(ctx, uid, pdfDoc("%PDF one")); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	if _, err := s.UploadIdea(ctx, uid, pdfDoc("%PDF two")); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on second upload, got %v", err)
	}
	// The second object must have been compensated away.
	if len(store.saved) != 1 {
		t.Fatalf("orphaned object left behind: %d stored", len(store.saved))
	}
	if len(store.deleted) != 1 {
		t.Fatalf("expected one compensating delete, got %d", len(store.deleted))
	}
}

func TestUsers_UploadIdea_LinkFailureRemovesBytes(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	users.setURLErr = errors.New("db down")
	store := &fakeStore{}
	s := NewUserService(users, store)

	_, err := s.UploadIdea(context.Background(), uid, pdfDoc("%PDF x"))
	if err == nil {
		t.Fatalf("want link error")
	}
	if errors.Is(err, errs.ErrValidation) {
		t.Fatalf("storage/db failure must not look like validation: %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("orphaned object left after failed link")
	}
	if len(store.deleted) != 1 {
		t.Fatalf("compensating delete not issued")
	}
}

func TestUsers_UploadIdea_SaveFailureSkipsLink(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	store := &fakeStore{saveErr: errors.New("disk full")}
	s := NewUserService(users, store)

	_, err := s.UploadIdea(context.Background(), uid, pdfDoc("%PDF x"))
	if err == nil {
		t.Fatalf("want save error")
	}
	if users.setURLCalls != 0 {
		t.Fatalf("link attempted after failed persist")
	}
}

func TestUsers_UploadIdea_DeleteFailureIsReported(t *testing.T) {
	t.Parallel()

	uid := uuid.Must(uuid.NewV4())
	users := &fakeUsers{byEmail: map[string]*model.User{
		"a@example.com": {ID: uid, Email: "a@example.com"},
	}}
	users.setURLErr = errors.New("db down")
	store := &fakeStore{deleteErr: errors.New("delete failed")}
	s := NewUserService(users, store)

	_, err := s.UploadIdea(context.Background(), uid, pdfDoc("%PDF x"))
	if err == nil || !strings.Contains(err.Error(), "orphaned") {
		t.Fatalf("want joined error mentioning the orphan, got %v", err)
	}
}
