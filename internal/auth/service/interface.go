// Package service provides token signing and key management for user identities.
package service

import (
	"context"

	authDomain "github.com/allisson/social/internal/auth/domain"
)

// TokenCodec issues and validates signed identity tokens.
type TokenCodec interface {
	// Issue signs a token for the user that expires after the codec lifetime.
	Issue(userID int64, userName string) (*authDomain.IssuedToken, error)

	// Validate returns the identity inside token. Every failure is reported as
	// authDomain.ErrInvalidToken.
	Validate(token string) (authDomain.Identity, error)
}

// KMSKeeper encrypts and decrypts small secrets with a key held by a KMS.
// *secrets.Keeper from gocloud.dev satisfies it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for a KMS key URI.
type KMSService interface {
	// OpenKeeper supports gcpkms://, awskms://, azurekeyvault://, hashivault:// and base64key://.
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
