package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codetern/gotasks/internal/pkg/response"
	"github.com/codetern/gotasks/internal/pkg/token"
)

// Auth validates the bearer token and stores the resolved identity in the
// request context. All owner-scoped handlers read "userID" from there.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		// Accept both "Bearer <token>" (case-insensitive) and a raw token.
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
