// Package dto provides the request and response bodies of the comment endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/social/internal/validation"
)

// CreateCommentRequest is the body of POST /api/comments/create.
type CreateCommentRequest struct {
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
}

// Validate checks if the create comment request is valid.
func (r *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PostID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 1000),
		),
	)
}
