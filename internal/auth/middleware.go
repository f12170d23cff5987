package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal"
	"github.com/yourname/healthtracker/internal/response"
)

// UserKey is the gin context key holding the authenticated *internal.User.
const UserKey = "user"

func AuthMiddleware(provider Provider, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token != "" {
				user, err := provider.Authenticate(c.Request.Context(), token)
				if err == nil {
					c.Set(UserKey, user)
					c.Next()
					return
				}
				logger.Debugf("authentication failed: %v", err)
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
	}
}

// UserFrom returns the user set by AuthMiddleware.
func UserFrom(c *gin.Context) (*internal.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*internal.User)
	return user, ok && user != nil
}
