// Package dto provides the request and response bodies of the user endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/social/internal/user/domain"
	customValidation "github.com/allisson/social/internal/validation"
)

// RegisterUserRequest is the body of POST /api/user/register.
type RegisterUserRequest struct {
	UserName    string  `json:"userName"`
	Password    string  `json:"password"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email"`
	Biography   *string `json:"biography"`
}

// Validate checks if the register request is valid.
func (r *RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxUserNameLength),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.PhoneNumber,
			validation.Required,
			customValidation.PhoneNumber,
		),
		validation.Field(&r.Email, customValidation.Email),
	)
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PhoneNumber, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateUserRequest is the body of PUT /api/user/update. The user is taken
// from the bearer token, never from the body.
type UpdateUserRequest struct {
	Biography *string `json:"biography"`
}

// Validate checks if the update request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Biography, validation.Length(0, 500)),
	)
}
