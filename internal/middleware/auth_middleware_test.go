package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/service"
	"github.com/primehood/supplies-api/internal/utils"
)

type stubUserStore struct {
	users map[int]*models.User
}

func (s *stubUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("no rows")
}

func (s *stubUserStore) GetByID(id int) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("no rows")
}

func newAuthRouter(t *testing.T, store service.UserStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(store, "test-secret", time.Hour)
	mw := NewAuthMiddleware(authService)

	r := gin.New()
	r.GET("/protected", mw.Handle(), mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetInt("user_id")})
	})
	return r
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	store := &stubUserStore{users: map[int]*models.User{
		1: {ID: 1, Email: "admin@primehood.co.ke", Role: models.RoleAdmin},
	}}
	r := newAuthRouter(t, store)

	token, err := utils.GenerateJWT("test-secret", 1, "admin@primehood.co.ke", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newAuthRouter(t, &stubUserStore{users: map[int]*models.User{}})

	w := doProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newAuthRouter(t, &stubUserStore{users: map[int]*models.User{}})

	w := doProtected(r, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	// Token is valid and unexpired but the account no longer exists.
	r := newAuthRouter(t, &stubUserStore{users: map[int]*models.User{}})

	token, err := utils.GenerateJWT("test-secret", 42, "gone@primehood.co.ke", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "USER_GONE")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	store := &stubUserStore{users: map[int]*models.User{
		1: {ID: 1, Email: "admin@primehood.co.ke", Role: models.RoleAdmin},
	}}
	r := newAuthRouter(t, store)

	token, err := utils.GenerateJWT("other-secret", 1, "admin@primehood.co.ke", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminNonAdminRole(t *testing.T) {
	store := &stubUserStore{users: map[int]*models.User{
		2: {ID: 2, Email: "viewer@primehood.co.ke", Role: "VIEWER"},
	}}
	r := newAuthRouter(t, store)

	token, err := utils.GenerateJWT("test-secret", 2, "viewer@primehood.co.ke", "VIEWER", time.Hour)
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
