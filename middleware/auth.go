// auth.go - Bearer token authentication middleware
//
// The gate only authenticates: it resolves the token to a user record
// and attaches it to the request context. Role checks stay in the
// handlers so each endpoint's contract is testable on its own.

package middleware

import (
	"net/http"
	"strings"

	"school-backend/auth"
	"school-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// userKey is the context key the authenticated user record is stored under.
const userKey = "currentUser"

// Authenticate extracts the bearer token, verifies it and loads the
// user it was issued for. Any failure along the way is a 401.
func Authenticate(db *gorm.DB, tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			return
		}

		userID, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user record attached by Authenticate.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
