package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	"github.com/allisson/social/internal/database"
	"github.com/allisson/social/internal/escape"
	"github.com/allisson/social/internal/post/domain"
	appValidation "github.com/allisson/social/internal/validation"
)

// CreatePostInput contains the data needed to publish a post.
type CreatePostInput struct {
	UserID  int64
	Content string
}

// EditPostInput replaces the content of PostID. UserID identifies the caller;
// ownership is not checked.
type EditPostInput struct {
	UserID  int64
	PostID  int64
	Content string
}

// DeletePostInput removes PostID on behalf of UserID; ownership is not checked.
type DeletePostInput struct {
	UserID int64
	PostID int64
}

type postUseCase struct {
	txManager     database.TxManager
	postRepo      PostRepository
	commentLister CommentLister
}

// NewPostUseCase creates the post UseCase.
func NewPostUseCase(
	txManager database.TxManager,
	postRepo PostRepository,
	commentLister CommentLister,
) UseCase {
	return &postUseCase{
		txManager:     txManager,
		postRepo:      postRepo,
		commentLister: commentLister,
	}
}

func contentRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("post content is required"),
		appValidation.NotBlank,
	}
}

func (uc *postUseCase) Create(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.UserID, validation.Required.Error("user id is required")),
		validation.Field(&input.Content, contentRules()...),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	post := &domain.Post{
		UserID:  input.UserID,
		Content: escape.String(input.Content),
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List loads all posts and their comments from one read only transaction.
func (uc *postUseCase) List(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post

	err := uc.txManager.WithReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		posts, err = uc.postRepo.List(ctx)
		if err != nil {
			return err
		}

		for _, post := range posts {
			post.Comments, err = uc.commentLister.ListByPost(ctx, post.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (uc *postUseCase) Edit(ctx context.Context, input EditPostInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.PostID, validation.Required.Error("post id is required")),
		validation.Field(&input.UserID, validation.Required.Error("user id is required")),
		validation.Field(&input.Content, contentRules()...),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	return uc.postRepo.Edit(ctx, input.PostID, escape.String(input.Content))
}

func (uc *postUseCase) Delete(ctx context.Context, input DeletePostInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.PostID, validation.Required.Error("post id is required")),
		validation.Field(&input.UserID, validation.Required.Error("user id is required")),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	return uc.postRepo.Delete(ctx, input.PostID)
}
