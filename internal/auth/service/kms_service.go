package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"gocloud.dev/secrets"

	// KMS drivers selectable through KMS_KEY_URI
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ErrKMSKeyURIRequired is returned when a token secret is configured without a key URI.
var ErrKMSKeyURIRequired = errors.New("KMS_KEY_URI is required when AUTH_TOKEN_SECRET is set")

type kmsService struct{}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// LoadSigningKey builds the process signing key. An empty encodedSecret yields a
// random key. Otherwise the base64 ciphertext is decrypted with the keeper for
// keyURI and the key is derived from the plaintext.
func LoadSigningKey(ctx context.Context, kms KMSService, keyURI, encodedSecret string) (SigningKey, error) {
	if encodedSecret == "" {
		return GenerateSigningKey()
	}
	if keyURI == "" {
		return SigningKey{}, ErrKMSKeyURIRequired
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return SigningKey{}, fmt.Errorf("failed to decode token secret: %w", err)
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return SigningKey{}, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return SigningKey{}, fmt.Errorf("failed to decrypt token secret: %w", err)
	}
	defer clear(plaintext)

	return DeriveSigningKey(plaintext)
}
