package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/gofrs/uuid/v5"

	"github.com/niteshram69/mind-ai-forge/internal/model"
	"github.com/niteshram69/mind-ai-forge/internal/repository"
)

// AdminService defines the privileged bulk operations over the user store.
type AdminService interface {
	// List returns every user, newest first.
	List(ctx context.Context) ([]model.User, error)
	// Delete removes a user unconditionally. Unknown ids surface as
	// errs.ErrNotFound; callers treat that as a distinct, non-fatal outcome.
	Delete(ctx context.Context, id uuid.UUID) error
	// ExportPDF renders the registered-users report, ordered by name.
	// Pure read-and-format; no store mutation.
	ExportPDF(ctx context.Context) ([]byte, error)
}

type AdminServiceImpl struct {
	users repository.UserRepository
}

// NewAdminService constructs AdminService.
func NewAdminService(users repository.UserRepository) *AdminServiceImpl {
	return &AdminServiceImpl{users: users}
}

func (s *AdminServiceImpl) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *AdminServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

// ExportPDF lists users by name and renders one numbered entry per user.
func (s *AdminServiceImpl) ExportPDF(ctx context.Context) ([]byte, error) {
	users, err := s.users.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Mind AI Forge - Registered Users", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, u := range users {
		p := u.Profile
		pdf.SetFont("Helvetica", "BU", 14)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s (%s)", i+1, p.FullName, u.EmployeeID), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, "   Email: "+u.Email, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "   Designation: "+p.Designation, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("   Tech: %s | Exp: %d years", p.PrimaryTechnology, p.ExperienceYears), "", 1, "L", false, 0, "")
		uploaded := "No"
		if u.IdeaPDFURL != "" {
			uploaded = "Yes"
		}
		pdf.CellFormat(0, 5, "   Uploaded Idea: "+uploaded, "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
