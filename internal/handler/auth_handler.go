package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primehood/supplies-api/internal/middleware"
	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	limiter     *middleware.LoginRateLimiter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService, limiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

// Login exchanges admin credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		utils.Error(c, 429, "RATE_LIMITED", "Too many login attempts, please try again later")
		return
	}

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		status, code, msg := loginError(err)
		utils.Error(c, status, code, msg)
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// loginError maps a login failure to its HTTP status, error code, and
// message. Only known auth errors become 4xx; anything else is internal.
func loginError(err error) (int, string, string) {
	switch err {
	case utils.ErrInvalidCredentials:
		return 401, "INVALID_CREDENTIALS", "Invalid email or password"
	case utils.ErrAdminOnly:
		return 403, "ADMIN_ONLY", "Admin access only"
	default:
		return 500, "INTERNAL_ERROR", "Login failed"
	}
}

// Me returns the authenticated admin account.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUser(c.GetInt("user_id"))
	if err != nil {
		utils.Error(c, 404, "USER_NOT_FOUND", "User not found")
		return
	}
	utils.Success(c, 200, "User retrieved", gin.H{"user": user})
}
