// Package httpserver exposes the registration portal HTTP API.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/niteshram69/mind-ai-forge/internal/repository/postgres"
	"github.com/niteshram69/mind-ai-forge/internal/service"
	"github.com/niteshram69/mind-ai-forge/internal/token"
)

// Deps collects everything the HTTP layer is wired with.
type Deps struct {
	Auth   service.AuthService
	Users  service.UserService
	Admin  service.AdminService
	Tokens *token.Service
	DB     *postgres.DB
	Log    *zap.Logger
	// UploadsDir, when set, is served under /uploads (disk storage only).
	UploadsDir string
}

// Server wires services into HTTP handlers.
type Server struct {
	auth   service.AuthService
	users  service.UserService
	admin  service.AdminService
	tokens *token.Service
	db     *postgres.DB
	log    *zap.Logger
	router *gin.Engine
}

// New constructs the server and registers all routes.
func New(deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		auth:   deps.Auth,
		users:  deps.Users,
		admin:  deps.Admin,
		tokens: deps.Tokens,
		db:     deps.DB,
		log:    deps.Log,
		router: gin.New(),
	}

	s.router.Use(Recovery(s.log), Logging(s.log))

	if deps.UploadsDir != "" {
		s.router.Static("/uploads", deps.UploadsDir)
	}

	s.router.GET("/api/health", s.health)

	auth := s.router.Group("/api/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)

	user := s.router.Group("/api/user")
	user.Use(RequireAuth(s.tokens))
	user.GET("/me", s.me)
	user.POST("/upload-idea", s.uploadIdea)

	admin := s.router.Group("/api/admin")
	admin.Use(RequireAuth(s.tokens), RequireAdmin())
	admin.GET("/users", s.listUsers)
	admin.DELETE("/users/:id", s.deleteUser)
	admin.GET("/export-pdf", s.exportPDF)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}
	if err := s.db.Pool.Ping(c.Request.Context()); err != nil {
		s.log.Error("db ping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connected"})
}
