package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/social/internal/errors"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "valid", value: "alice@example.com", shouldErr: false},
		{name: "valid with plus", value: "alice+news@mail.example.org", shouldErr: false},
		{name: "empty is skipped", value: "", shouldErr: false},
		{name: "missing at", value: "alice.example.com", shouldErr: true},
		{name: "missing tld", value: "alice@example", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, Email)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "valid email")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "digits", value: "13800138000", shouldErr: false},
		{name: "international", value: "+5511999998888", shouldErr: false},
		{name: "letters", value: "call-me", shouldErr: true},
		{name: "too short", value: "123", shouldErr: true},
		{name: "inner plus", value: "55+11999", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, PhoneNumber)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("hello", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("\t\n", NotBlank))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("content: cannot be blank."))

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "content: cannot be blank.")
	})
}
