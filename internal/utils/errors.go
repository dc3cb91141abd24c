package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrAdminOnly          = errors.New("ADMIN_ONLY")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrUserGone           = errors.New("USER_GONE")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrDuplicateSlug      = errors.New("DUPLICATE_SLUG")
	ErrOutOfStock         = errors.New("OUT_OF_STOCK")
	ErrEmptyOrder         = errors.New("EMPTY_ORDER")
	ErrInvalidStatus      = errors.New("INVALID_STATUS")
)
