package service

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/utils"
)

// UserStore is the account lookup surface the auth gate needs.
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

// AuthService exchanges admin credentials for bearer tokens and verifies
// them on protected routes.
type AuthService struct {
	users  UserStore
	secret string
	expiry time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, expiry: expiry}
}

// Login verifies email+password and returns a signed token plus the user.
// Unknown emails and wrong passwords both surface as ErrInvalidCredentials;
// a valid non-admin account gets ErrAdminOnly.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Debug().Str("email", email).Msg("login: unknown email")
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("email", email).Msg("login: password mismatch")
		return "", nil, utils.ErrInvalidCredentials
	}

	if user.Role != models.RoleAdmin {
		log.Warn().Str("email", email).Str("role", user.Role).Msg("login: non-admin account")
		return "", nil, utils.ErrAdminOnly
	}

	token, err := utils.GenerateJWT(s.secret, user.ID, user.Email, user.Role, s.expiry)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("email", email).Msg("login successful")
	return token, user, nil
}

// Authenticate validates a bearer token and re-checks that the referenced
// user still exists. A deleted user's previously issued token is rejected
// even before its expiry.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	claims, err := utils.ValidateJWT(s.secret, tokenString)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, utils.ErrUserGone
	}
	return user, nil
}

// GetUser returns the account behind an authenticated session.
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.users.GetByID(id)
}

// HashPassword produces a bcrypt hash for seeding admin accounts.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
