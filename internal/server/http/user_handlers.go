package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/niteshram69/mind-ai-forge/internal/errs"
	"github.com/niteshram69/mind-ai-forge/internal/service"
)

// callerID resolves the authenticated record id, never an id from the
// request body.
func (s *Server) callerID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := claimsFromCtx(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return uuid.Nil, false
	}
	id, err := claims.UserID()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) me(c *gin.Context) {
	id, ok := s.callerID(c)
	if !ok {
		return
	}

	u, err := s.users.Me(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		s.log.Error("me failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

func (s *Server) uploadIdea(c *gin.Context) {
	id, ok := s.callerID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("ideaPdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.log.Error("open upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	defer f.Close()

	loc, err := s.users.UploadIdea(c.Request.Context(), id, service.Document{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, errs.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "idea document already uploaded"})
		default:
			s.log.Error("upload failed", zap.Error(err), zap.String("user_id", id.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "file uploaded successfully",
		"fileUrl": loc,
	})
}
