// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role is the access tier stored on a user record.
type Role string

// Exactly two tiers exist; promotion happens only through the promote CLI.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Profile groups the free-form registration attributes. The core passes
// them through unchanged; only the export report reads a subset.
type Profile struct {
	FullName              string
	Designation           string
	PrimaryTechnology     string
	ExperienceYears       int
	ExperienceMonths      int
	SkillLevel            string
	CustomerName          string
	CustomerCountry       string
	CustomerPICName       string
	CustomerPICDepartment string
	CurrentWork           string
	AIOpportunity         string
	CustomerAIAdoption    string
	ProductBusinessLine   string
	WorkedOnAI            string
	AISkillLevel          string
	AIUpskillInterest     string
	AICertification       string
	AIForgeBusinessView   string
}

// User represents one registrant. The password hash never leaves the
// service layer; IdeaPDFURL is empty until a successful upload.
type User struct {
	ID           uuid.UUID
	EmployeeID   string // unique
	Email        string // unique
	PasswordHash string
	Role         Role
	Profile      Profile
	IdeaPDFURL   string
	CreatedAt    time.Time
}

// PublicUser is the projection of a user safe to return to clients.
type PublicUser struct {
	ID                    uuid.UUID `json:"id"`
	EmployeeID            string    `json:"employee_id"`
	Email                 string    `json:"email"`
	Role                  Role      `json:"role"`
	FullName              string    `json:"full_name"`
	Designation           string    `json:"designation"`
	PrimaryTechnology     string    `json:"primary_technology"`
	ExperienceYears       int       `json:"experience_years"`
	ExperienceMonths      int       `json:"experience_months"`
	SkillLevel            string    `json:"skill_level"`
	CustomerName          string    `json:"customer_name"`
	CustomerCountry       string    `json:"customer_country"`
	CustomerPICName       string    `json:"customer_pic_name"`
	CustomerPICDepartment string    `json:"customer_pic_department"`
	CurrentWork           string    `json:"current_work_description"`
	AIOpportunity         string    `json:"ai_opportunity"`
	CustomerAIAdoption    string    `json:"customer_ai_adoption"`
	ProductBusinessLine   string    `json:"product_business_line"`
	WorkedOnAI            string    `json:"worked_on_ai"`
	AISkillLevel          string    `json:"ai_skill_level"`
	AIUpskillInterest     string    `json:"ai_upskill_interest"`
	AICertification       string    `json:"ai_certification"`
	AIForgeBusinessView   string    `json:"ai_forge_core_business_view"`
	IdeaPDFURL            string    `json:"idea_pdf_url,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// Public strips the password hash and flattens the profile for clients.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                    u.ID,
		EmployeeID:            u.EmployeeID,
		Email:                 u.Email,
		Role:                  u.Role,
		FullName:              u.Profile.FullName,
		Designation:           u.Profile.Designation,
		PrimaryTechnology:     u.Profile.PrimaryTechnology,
		ExperienceYears:       u.Profile.ExperienceYears,
		ExperienceMonths:      u.Profile.ExperienceMonths,
		SkillLevel:            u.Profile.SkillLevel,
		CustomerName:          u.Profile.CustomerName,
		CustomerCountry:       u.Profile.CustomerCountry,
		CustomerPICName:       u.Profile.CustomerPICName,
		CustomerPICDepartment: u.Profile.CustomerPICDepartment,
		CurrentWork:           u.Profile.CurrentWork,
		AIOpportunity:         u.Profile.AIOpportunity,
		CustomerAIAdoption:    u.Profile.CustomerAIAdoption,
		ProductBusinessLine:   u.Profile.ProductBusinessLine,
		WorkedOnAI:            u.Profile.WorkedOnAI,
		AISkillLevel:          u.Profile.AISkillLevel,
		AIUpskillInterest:     u.Profile.AIUpskillInterest,
		AICertification:       u.Profile.AICertification,
		AIForgeBusinessView:   u.Profile.AIForgeBusinessView,
		IdeaPDFURL:            u.IdeaPDFURL,
		CreatedAt:             u.CreatedAt,
	}
}
