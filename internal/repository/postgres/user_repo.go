package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

// UserRepo implements repository.UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, employee_id, email, password_hash, role,
full_name, designation, primary_technology, experience_years, experience_months, skill_level,
customer_name, customer_country, customer_pic_name, customer_pic_department, current_work_description,
ai_opportunity, customer_ai_adoption, product_business_line, worked_on_ai,
ai_skill_level, ai_upskill_interest, ai_certification, ai_forge_core_business_view,
idea_pdf_url, created_at`

// Create inserts a new user row. created_at is set by the database.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (
  id, employee_id, email, password_hash, role,
  full_name, designation, primary_technology, experience_years, experience_months, skill_level,
  customer_name, customer_country, customer_pic_name, customer_pic_department, current_work_description,
  ai_opportunity, customer_ai_adoption, product_business_line, worked_on_ai,
  ai_skill_level, ai_upskill_interest, ai_certification, ai_forge_core_business_view
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	p := u.Profile
	_, err := r.db.Pool.Exec(ctx, q,
		u.ID, u.EmployeeID, u.Email, u.PasswordHash, string(u.Role),
		p.FullName, p.Designation, p.PrimaryTechnology, p.ExperienceYears, p.ExperienceMonths, p.SkillLevel,
		p.CustomerName, p.CustomerCountry, p.CustomerPICName, p.CustomerPICDepartment, p.CurrentWork,
		p.AIOpportunity, p.CustomerAIAdoption, p.ProductBusinessLine, p.WorkedOnAI,
		p.AISkillLevel, p.AIUpskillInterest, p.AICertification, p.AIForgeBusinessView,
	)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func scanUser(row pgx.Row) (*model.User, error) {
	var (
		u      model.User
		role   string
		pdfURL *string
	)
	p := &u.Profile
	err := row.Scan(
		&u.ID, &u.EmployeeID, &u.Email, &u.PasswordHash, &role,
		&p.FullName, &p.Designation, &p.PrimaryTechnology, &p.ExperienceYears, &p.ExperienceMonths, &p.SkillLevel,
		&p.CustomerName, &p.CustomerCountry, &p.CustomerPICName, &p.CustomerPICDepartment, &p.CurrentWork,
		&p.AIOpportunity, &p.CustomerAIAdoption, &p.ProductBusinessLine, &p.WorkedOnAI,
		&p.AISkillLevel, &p.AIUpskillInterest, &p.AICertification, &p.AIForgeBusinessView,
		&pdfURL, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	if pdfURL != nil {
		u.IdeaPDFURL = *pdfURL
	}
	return &u, nil
}

// GetByID selects a user by record id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	u, err := scanUser(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return u, nil
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	u, err := scanUser(r.db.Pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return u, nil
}

// SetIdeaPDFURLIfEmpty links a document only while the record has none.
func (r *UserRepo) SetIdeaPDFURLIfEmpty(ctx context.Context, id uuid.UUID, url string) error {
	const q = `
UPDATE users
SET idea_pdf_url = $2
WHERE id = $1 AND idea_pdf_url IS NULL`
	tag, err := r.db.Pool.Exec(ctx, q, id, url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrAlreadyExists
	}
	return nil
}

func (r *UserRepo) listOrdered(ctx context.Context, orderBy string) ([]model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY ` + orderBy
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return r.listOrdered(ctx, "created_at DESC")
}

// ListByName returns all users ordered by full name.
func (r *UserRepo) ListByName(ctx context.Context) ([]model.User, error) {
	return r.listOrdered(ctx, "full_name ASC")
}

// Delete removes a user row.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// PromoteToAdmin flips the role for the given email.
func (r *UserRepo) PromoteToAdmin(ctx context.Context, email string) error {
	const q = `UPDATE users SET role='ADMIN' WHERE email=$1`
	tag, err := r.db.Pool.Exec(ctx, q, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
