package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/utils"
)

// fakeUserStore serves users from a map; deleting from the map simulates a
// removed account.
type fakeUserStore struct {
	byEmail map[string]*models.User
	byID    map[int]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{byEmail: map[string]*models.User{}, byID: map[int]*models.User{}}
	for _, u := range users {
		s.byEmail[u.Email] = u
		s.byID[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("no rows")
}

func (s *fakeUserStore) GetByID(id int) (*models.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("no rows")
}

func adminUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := HashPassword("Admin@2026!")
	require.NoError(t, err)
	return &models.User{
		ID:           1,
		Email:        "admin@primehood.co.ke",
		PasswordHash: hash,
		Name:         "FG Kibe",
		Role:         models.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(adminUser(t)), "secret", time.Hour)

	token, user, err := svc.Login("admin@primehood.co.ke", "Admin@2026!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@primehood.co.ke", user.Email)

	claims, err := utils.ValidateJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(adminUser(t)), "secret", time.Hour)

	_, _, err := svc.Login("admin@primehood.co.ke", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), "secret", time.Hour)

	_, _, err := svc.Login("nobody@primehood.co.ke", "Admin@2026!")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginNonAdminRejected(t *testing.T) {
	user := adminUser(t)
	user.Role = "VIEWER"
	svc := NewAuthService(newFakeUserStore(user), "secret", time.Hour)

	_, _, err := svc.Login(user.Email, "Admin@2026!")
	assert.ErrorIs(t, err, utils.ErrAdminOnly)
}

func TestAuthenticateValidToken(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	svc := NewAuthService(store, "secret", time.Hour)

	token, _, err := svc.Login("admin@primehood.co.ke", "Admin@2026!")
	require.NoError(t, err)

	user, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestAuthenticateDeletedUserRejected(t *testing.T) {
	user := adminUser(t)
	store := newFakeUserStore(user)
	svc := NewAuthService(store, "secret", time.Hour)

	token, _, err := svc.Login(user.Email, "Admin@2026!")
	require.NoError(t, err)

	// Delete the account; the still-unexpired token must stop working.
	delete(store.byID, user.ID)
	delete(store.byEmail, user.Email)

	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, utils.ErrUserGone)
}

func TestAuthenticateTamperedToken(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(adminUser(t)), "secret", time.Hour)

	forged, err := utils.GenerateJWT("other-secret", 1, "admin@primehood.co.ke", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = svc.Authenticate(forged)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
