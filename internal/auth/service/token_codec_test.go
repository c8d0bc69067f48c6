package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/social/internal/auth/domain"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCodec(t *testing.T, lifetime time.Duration) (TokenCodec, *fakeClock, SigningKey) {
	t.Helper()
	key, err := GenerateSigningKey()
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)}
	codec, err := NewTokenCodec(key, lifetime, WithClock(clock.Now))
	require.NoError(t, err)

	return codec, clock, key
}

func TestNewTokenCodec_RequiresKey(t *testing.T) {
	codec, err := NewTokenCodec(SigningKey{}, time.Hour)

	assert.Nil(t, codec)
	assert.Error(t, err)
}

func TestTokenCodec_Issue(t *testing.T) {
	codec, clock, _ := newTestCodec(t, 24*time.Hour)

	issued, err := codec.Issue(42, "alice")

	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, "Bearer", issued.Type)
	assert.Equal(t, clock.now, issued.IssuedAt)
	assert.Equal(t, clock.now.Add(24*time.Hour), issued.ExpiresAt)
	assert.Len(t, strings.Split(issued.Token, "."), 3)
}

func TestTokenCodec_Issue_TruncatesToSeconds(t *testing.T) {
	codec, clock, _ := newTestCodec(t, 2*time.Second)
	clock.Advance(750 * time.Millisecond)
	whole := clock.now.Truncate(time.Second)

	issued, err := codec.Issue(42, "alice")
	require.NoError(t, err)

	assert.Equal(t, whole, issued.IssuedAt)
	assert.Equal(t, whole.Add(2*time.Second), issued.ExpiresAt)

	// 1.5s after issuing is past the truncated exp even though the lifetime is 2s.
	clock.Advance(1500 * time.Millisecond)
	_, err = codec.Validate(issued.Token)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Validate(t *testing.T) {
	t.Run("Success_RoundTrip", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, 24*time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		identity, err := codec.Validate(issued.Token)

		require.NoError(t, err)
		assert.Equal(t, authDomain.Identity{UserID: 42, UserName: "alice"}, identity)
	})

	t.Run("Success_JustBeforeExpiry", func(t *testing.T) {
		codec, clock, _ := newTestCodec(t, 24*time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		clock.Advance(24*time.Hour - time.Second)
		_, err = codec.Validate(issued.Token)

		assert.NoError(t, err)
	})

	t.Run("Error_ExpiredAfterLifetime", func(t *testing.T) {
		codec, clock, _ := newTestCodec(t, 24*time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		clock.Advance(25 * time.Hour)
		_, err = codec.Validate(issued.Token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_ExpiredAtExactInstant", func(t *testing.T) {
		codec, clock, _ := newTestCodec(t, time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		clock.Advance(time.Hour)
		_, err = codec.Validate(issued.Token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_NegativeLifetime", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, -time.Millisecond)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		_, err = codec.Validate(issued.Token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_FlippedSignatureBit", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		parts := strings.Split(issued.Token, ".")
		signature, err := base64.RawURLEncoding.DecodeString(parts[2])
		require.NoError(t, err)
		signature[0] ^= 0x01
		parts[2] = base64.RawURLEncoding.EncodeToString(signature)

		_, err = codec.Validate(strings.Join(parts, "."))

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_TamperedPayload", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		parts := strings.Split(issued.Token, ".")
		parts[1] = base64.RawURLEncoding.EncodeToString(
			[]byte(`{"userId":1,"userName":"admin","exp":4102444800}`),
		)

		_, err = codec.Validate(strings.Join(parts, "."))

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_DifferentKey", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, time.Hour)
		otherCodec, _, _ := newTestCodec(t, time.Hour)

		issued, err := codec.Issue(42, "alice")
		require.NoError(t, err)

		_, err = otherCodec.Validate(issued.Token)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_Malformed", func(t *testing.T) {
		codec, _, _ := newTestCodec(t, time.Hour)

		for _, token := range []string{"", "abc", "a.b.c", "Bearer x.y.z"} {
			_, err := codec.Validate(token)
			assert.ErrorIs(t, err, authDomain.ErrInvalidToken, token)
		}
	})

	t.Run("Error_NoneAlgorithm", func(t *testing.T) {
		codec, clock, _ := newTestCodec(t, time.Hour)

		claims := identityClaims{
			UserID:   42,
			UserName: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
			},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = codec.Validate(unsigned)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingExpiration", func(t *testing.T) {
		codec, _, key := newTestCodec(t, time.Hour)

		claims := identityClaims{UserID: 42, UserName: "alice"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.bytes())
		require.NoError(t, err)

		_, err = codec.Validate(signed)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("Error_MissingIdentityClaims", func(t *testing.T) {
		codec, clock, key := newTestCodec(t, time.Hour)

		claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour))}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.bytes())
		require.NoError(t, err)

		_, err = codec.Validate(signed)

		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}

func TestTokenCodec_SharedDerivedKey(t *testing.T) {
	secret := []byte(strings.Repeat("s", 48))

	keyA, err := DeriveSigningKey(secret)
	require.NoError(t, err)
	keyB, err := DeriveSigningKey(secret)
	require.NoError(t, err)

	issuer, err := NewTokenCodec(keyA, time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenCodec(keyB, time.Hour)
	require.NoError(t, err)

	issued, err := issuer.Issue(7, "bob")
	require.NoError(t, err)

	identity, err := verifier.Validate(issued.Token)

	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "bob", identity.UserName)
}
