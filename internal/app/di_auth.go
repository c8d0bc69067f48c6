package app

import (
	"context"
	"fmt"

	authService "github.com/allisson/social/internal/auth/service"
)

type authComponents struct {
	kmsService lazy[authService.KMSService]
	signingKey lazy[authService.SigningKey]
	tokenCodec lazy[authService.TokenCodec]
}

// KMSService returns the service used to open KMS keepers.
func (c *Container) KMSService() authService.KMSService {
	kms, _ := c.auth.kmsService.get(func() (authService.KMSService, error) {
		return authService.NewKMSService(), nil
	})
	return kms
}

// SigningKey returns the key that signs and verifies tokens. Without
// AUTH_TOKEN_SECRET a random key is generated and tokens do not survive restarts.
func (c *Container) SigningKey() (authService.SigningKey, error) {
	return c.auth.signingKey.get(func() (authService.SigningKey, error) {
		if c.config.AuthTokenSecret == "" {
			c.Logger().Warn("AUTH_TOKEN_SECRET is not set, using a random signing key for this process")
		}
		key, err := authService.LoadSigningKey(
			context.Background(),
			c.KMSService(),
			c.config.KMSKeyURI,
			c.config.AuthTokenSecret,
		)
		if err != nil {
			return authService.SigningKey{}, fmt.Errorf("failed to load signing key: %w", err)
		}
		return key, nil
	})
}

// TokenCodec returns the codec that issues and validates identity tokens.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	return c.auth.tokenCodec.get(func() (authService.TokenCodec, error) {
		key, err := c.SigningKey()
		if err != nil {
			return nil, err
		}
		codec, err := authService.NewTokenCodec(key, c.config.AuthTokenLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to create token codec: %w", err)
		}
		return codec, nil
	})
}
