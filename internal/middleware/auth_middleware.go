package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// AuthMiddleware guards protected routes with bearer tokens.
type AuthMiddleware struct {
	authService *service.AuthService
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handle verifies the Authorization header, re-checks the user still exists
// in the store, and stashes the account in the request context.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		user, err := m.authService.Authenticate(parts[1])
		if err != nil {
			if err == utils.ErrUserGone {
				utils.Error(c, 401, "USER_GONE", "User no longer exists")
			} else {
				utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("role", user.Role)
		c.Next()
	}
}

// RequireAdmin enforces the admin role, independent of authentication.
// Must run after Handle.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			utils.Error(c, 403, "FORBIDDEN", "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
