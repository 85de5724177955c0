package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cmms/internal/domain"
	jwtsvc "cmms/internal/pkg/jwt"
	"cmms/internal/pkg/response"
)

// JWTAuth validates the bearer token and stores the caller's id, role and
// company in the request context.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("company_name", claims.CompanyName)

		c.Next()
	}
}

// CurrentIdentity rebuilds the caller context stored by JWTAuth. Services
// take this value explicitly instead of reading the gin context.
func CurrentIdentity(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID:      c.GetInt64("user_id"),
		Role:        domain.UserRole(c.GetString("role")),
		CompanyName: c.GetString("company_name"),
	}
}
