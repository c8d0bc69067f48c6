// Package dto provides the request and response bodies of the post endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/social/internal/validation"
)

const maxContentLength = 5000

// CreatePostRequest is the body of POST /api/post/create.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// Validate checks if the create post request is valid.
func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
	)
}

// EditPostRequest is the body of PUT /api/post/edit.
type EditPostRequest struct {
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
}

// Validate checks if the edit post request is valid.
func (r *EditPostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PostID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxContentLength),
		),
	)
}
