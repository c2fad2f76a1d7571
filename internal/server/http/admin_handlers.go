package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/model"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.admin.List(c.Request.Context())
	if err != nil {
		s.log.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	out := make([]model.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}

	if err := s.admin.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		s.log.Error("delete user failed", zap.Error(err), zap.String("id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) exportPDF(c *gin.Context) {
	b, err := s.admin.ExportPDF(c.Request.Context())
	if err != nil {
		s.log.Error("export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename=users_export.pdf`)
	c.Data(http.StatusOK, "application/pdf", b)
}
