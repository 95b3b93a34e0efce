// handler.go - Shared handler state and role gating

package handlers

import (
	"net/http"

	"school-backend/auth"
	"school-backend/middleware"
	"school-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the injected database handle and credential service;
// every endpoint is a method on it.
type Handler struct {
	db     *gorm.DB
	tokens *auth.Service
}

func New(db *gorm.DB, tokens *auth.Service) *Handler {
	return &Handler{db: db, tokens: tokens}
}

// requireRole returns the authenticated user when it holds the required
// role; otherwise it aborts the request with 401/403.
func (h *Handler) requireRole(c *gin.Context, role models.Role) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return models.User{}, false
	}
	if user.Role != role {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return models.User{}, false
	}
	return user, true
}
