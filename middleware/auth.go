package middleware

import (
	"net/http"
	"strings"

	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAuthMiddleware guards a route group with a signed token check. The
// token comes from the Authorization header or, failing that, the token
// cookie. required is the minimum role; only admins pass an admin gate.
func NewAuthMiddleware(tm *security.TokenManager, required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization required",
				"requestID": requestID,
			})
			return
		}

		claims, err := tm.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid authorization token",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected auth token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if required == model.RoleAdmin && claims.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Admin access required",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// The Authorization header wins over the cookie when both are present.
func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie("token")
	if err == nil {
		return cookie
	}

	return ""
}
