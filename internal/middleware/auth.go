package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/pkg/token"
)

// ContextAdminID is the gin context key carrying the authenticated
// admin's id.
const ContextAdminID = "adminID"

// AdminAuth gates management routes behind a bearer token. A missing
// header, a malformed token, a bad signature and an expired token all
// produce the identical 401 body.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		adminID, err := token.Verify(raw, cfg.Auth.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Next()
	}
}
