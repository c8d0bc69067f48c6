package domain

import (
	"github.com/allisson/social/internal/errors"
)

// Token errors.
var (
	// ErrInvalidToken covers every validation failure: malformed, tampered,
	// signed with another key, expired or missing claims.
	ErrInvalidToken = errors.Define(errors.ErrUnauthorized, "invalid or expired token")

	// ErrIdentityRequired is returned when a protected route is called anonymously.
	ErrIdentityRequired = errors.Define(errors.ErrUnauthorized, "authentication is required")

	// ErrSigningKeyTooShort is returned when secret material is too short to derive a key from.
	ErrSigningKeyTooShort = errors.Define(errors.ErrInvalidInput, "token secret must be at least 32 bytes")
)
