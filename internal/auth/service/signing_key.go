package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	authDomain "github.com/allisson/social/internal/auth/domain"
)

const (
	// SigningKeySize is the length in bytes of HMAC-SHA256 signing keys.
	SigningKeySize = 32

	signingKeyInfo = "identity-token-signing-v1"
)

// SigningKey is the immutable HMAC key tokens are signed with. It is built once
// at startup and shared by every request.
type SigningKey struct {
	key []byte
}

// GenerateSigningKey returns a random key. Tokens signed with it stop
// validating once the process exits.
func GenerateSigningKey() (SigningKey, error) {
	key := make([]byte, SigningKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return SigningKey{}, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return SigningKey{key: key}, nil
}

// DeriveSigningKey derives a key from externally managed secret material with
// HKDF-SHA256, so every instance sharing the secret signs with the same key.
func DeriveSigningKey(secret []byte) (SigningKey, error) {
	if len(secret) < SigningKeySize {
		return SigningKey{}, authDomain.ErrSigningKeyTooShort
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte(signingKeyInfo))

	key := make([]byte, SigningKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return SigningKey{}, fmt.Errorf("failed to derive signing key: %w", err)
	}
	return SigningKey{key: key}, nil
}

// IsZero reports whether the key was never initialized.
func (k SigningKey) IsZero() bool {
	return len(k.key) == 0
}

// bytes returns a copy so callers cannot mutate the shared key.
func (k SigningKey) bytes() []byte {
	out := make([]byte, len(k.key))
	copy(out, k.key)
	return out
}
