package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"berserk-tattoos-backend/internal/config"
	"berserk-tattoos-backend/internal/shared/response"
)

// AdminAuth guards the admin endpoints with the shared secret from
// ADMIN_SECRET. The secret is read per request so it can be rotated without
// a restart. Requests fail with the same 401 whether the secret is unset or
// mismatched, and always before any downstream work runs.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AdminSecret()

		auth := c.GetHeader("Authorization")
		token, hasBearer := strings.CutPrefix(auth, "Bearer ")
		if secret == "" || !hasBearer ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
