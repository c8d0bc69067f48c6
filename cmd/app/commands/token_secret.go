package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/social/internal/auth/service"
)

const tokenSecretSize = 32

type tokenSecretOutput struct {
	AuthTokenSecret string `json:"auth_token_secret"`
	KMSKeyURI       string `json:"kms_key_uri"`
}

// RunCreateTokenSecret generates a random token signing secret, encrypts it with
// the keeper behind kmsKeyURI and writes the AUTH_TOKEN_SECRET and KMS_KEY_URI
// settings to w. The plaintext is zeroed before returning.
//
// For local development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunCreateTokenSecret(
	ctx context.Context,
	kmsService authService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	kmsKeyURI string,
	format string,
) error {
	if kmsKeyURI == "" {
		return fmt.Errorf(
			"--kms-key-uri is required\n\nFor local development, use:\n  --kms-key-uri=\"base64key://<32-byte-base64-key>\"",
		)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	secret := make([]byte, tokenSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate token secret: %w", err)
	}
	defer func() {
		for i := range secret {
			secret[i] = 0
		}
	}()

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, secret)
	if err != nil {
		return fmt.Errorf("failed to encrypt token secret with KMS: %w", err)
	}

	output := tokenSecretOutput{
		AuthTokenSecret: base64.StdEncoding.EncodeToString(ciphertext),
		KMSKeyURI:       kmsKeyURI,
	}

	logger.Info("token secret created")

	if format == "json" {
		return writeJSON(w, output)
	}

	_, err = fmt.Fprintf(w,
		"# Token signing configuration\n"+
			"# Copy these environment variables to your .env file or secrets manager\n\n"+
			"AUTH_TOKEN_SECRET=\"%s\"\n"+
			"KMS_KEY_URI=\"%s\"\n",
		output.AuthTokenSecret,
		output.KMSKeyURI,
	)
	return err
}
