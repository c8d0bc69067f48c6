package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/escape"
	appValidation "github.com/allisson/social/internal/validation"
)

// CreateCommentInput contains the data needed to comment on a post.
type CreateCommentInput struct {
	UserID  int64
	PostID  int64
	Content string
}

type commentUseCase struct {
	commentRepo CommentRepository
}

// NewCommentUseCase creates the comment UseCase.
func NewCommentUseCase(commentRepo CommentRepository) UseCase {
	return &commentUseCase{commentRepo: commentRepo}
}

func (uc *commentUseCase) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.UserID, validation.Required.Error("user id is required")),
		validation.Field(&input.PostID, validation.Required.Error("post id is required")),
		validation.Field(&input.Content,
			validation.Required.Error("comment content is required"),
			appValidation.NotBlank,
		),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	comment := &domain.Comment{
		UserID:  input.UserID,
		PostID:  input.PostID,
		Content: escape.String(input.Content),
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if err := validation.Validate(postID, validation.Required.Error("post id is required")); err != nil {
		return nil, appValidation.WrapValidationError(err)
	}
	return uc.commentRepo.ListByPost(ctx, postID)
}
