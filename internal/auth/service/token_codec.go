package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/social/internal/auth/domain"
)

// identityClaims is the token payload: userId, userName, iat and exp.
type identityClaims struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}

// CodecOption configures a token codec.
type CodecOption func(*jwtTokenCodec)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) CodecOption {
	return func(c *jwtTokenCodec) {
		c.now = now
	}
}

type jwtTokenCodec struct {
	key      SigningKey
	lifetime time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

// NewTokenCodec creates an HS256 codec signing with key. A negative lifetime
// produces tokens that are already expired. iat and exp are whole seconds, so
// a token may expire up to one second before now+lifetime; IssuedToken reports
// the truncated times.
func NewTokenCodec(key SigningKey, lifetime time.Duration, opts ...CodecOption) (TokenCodec, error) {
	if key.IsZero() {
		return nil, errors.New("token codec requires a signing key")
	}

	c := &jwtTokenCodec{
		key:      key,
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	return c, nil
}

func (c *jwtTokenCodec) Issue(userID int64, userName string) (*authDomain.IssuedToken, error) {
	issuedAt := c.now()
	expiresAt := issuedAt.Add(c.lifetime)

	claims := identityClaims{
		UserID:   userID,
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key.bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &authDomain.IssuedToken{
		Token:     signed,
		Type:      authDomain.TokenType,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (c *jwtTokenCodec) Validate(token string) (authDomain.Identity, error) {
	claims := &identityClaims{}

	parsed, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key.bytes(), nil
	})
	if err != nil || !parsed.Valid {
		return authDomain.Identity{}, authDomain.ErrInvalidToken
	}

	if claims.UserID <= 0 || claims.UserName == "" {
		return authDomain.Identity{}, authDomain.ErrInvalidToken
	}

	return authDomain.Identity{UserID: claims.UserID, UserName: claims.UserName}, nil
}
