package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primehood/supplies-api/internal/utils"
)

func TestLoginErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", utils.ErrInvalidCredentials, 401, "INVALID_CREDENTIALS"},
		{"non-admin account", utils.ErrAdminOnly, 403, "ADMIN_ONLY"},
		{"unexpected failure", errors.New("signing key unavailable"), 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := loginError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
