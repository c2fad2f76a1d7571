package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
	"github.com/niteshram69/mind-ai-forge/internal/service"
)

// RegisterRequest mirrors the multi-step form payload.
type RegisterRequest struct {
	EmployeeID            string `json:"employee_id" binding:"required"`
	Email                 string `json:"email" binding:"required"`
	Password              string `json:"password" binding:"required"`
	FullName              string `json:"full_name"`
	Designation           string `json:"designation"`
	PrimaryTechnology     string `json:"primary_technology"`
	ExperienceYears       int    `json:"experience_years"`
	ExperienceMonths      int    `json:"experience_months"`
	SkillLevel            string `json:"skill_level"`
	CustomerName          string `json:"customer_name"`
	CustomerCountry       string `json:"customer_country"`
	CustomerPICName       string `json:"customer_pic_name"`
	CustomerPICDepartment string `json:"customer_pic_department"`
	CurrentWork           string `json:"current_work_description"`
	AIOpportunity         string `json:"ai_opportunity"`
	CustomerAIAdoption    string `json:"customer_ai_adoption"`
	ProductBusinessLine   string `json:"product_business_line"`
	WorkedOnAI            string `json:"worked_on_ai"`
	AISkillLevel          string `json:"ai_skill_level"`
	AIUpskillInterest     string `json:"ai_upskill_interest"`
	AICertification       string `json:"ai_certification"`
	AIForgeBusinessView   string `json:"ai_forge_core_business_view"`
}

func (r RegisterRequest) toInput() service.RegisterInput {
	return service.RegisterInput{
		EmployeeID: r.EmployeeID,
		Email:      r.Email,
		Password:   r.Password,
		Profile: model.Profile{
			FullName:              r.FullName,
			Designation:           r.Designation,
			PrimaryTechnology:     r.PrimaryTechnology,
			ExperienceYears:       r.ExperienceYears,
			ExperienceMonths:      r.ExperienceMonths,
			SkillLevel:            r.SkillLevel,
			CustomerName:          r.CustomerName,
			CustomerCountry:       r.CustomerCountry,
			CustomerPICName:       r.CustomerPICName,
			CustomerPICDepartment: r.CustomerPICDepartment,
			CurrentWork:           r.CurrentWork,
			AIOpportunity:         r.AIOpportunity,
			CustomerAIAdoption:    r.CustomerAIAdoption,
			ProductBusinessLine:   r.ProductBusinessLine,
			WorkedOnAI:            r.WorkedOnAI,
			AISkillLevel:          r.AISkillLevel,
			AIUpskillInterest:     r.AIUpskillInterest,
			AICertification:       r.AICertification,
			AIForgeBusinessView:   r.AIForgeBusinessView,
		},
	}
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	u, err := s.auth.Register(c.Request.Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, errs.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists (email or employee ID)"})
		default:
			s.log.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    u.Public(),
	})
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	tok, exp, u, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		s.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      tok,
		"expires_at": exp,
		"user":       u.Public(),
	})
}
