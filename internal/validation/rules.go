// Package validation provides the custom rules shared by DTOs and use cases.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/social/internal/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{5,20}$`)
)

// WrapValidationError turns a validation failure into ErrInvalidInput so the
// HTTP layer answers 422 with the rule messages.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email checks the address shape. Empty values are skipped, combine with
// validation.Required when the field is mandatory.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// PhoneNumber accepts digits with an optional leading plus sign.
var PhoneNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return phoneRegex.MatchString(s)
	},
	validation.NewError("validation_phone_number", "must be a valid phone number"),
)

// NotBlank rejects strings made only of whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
