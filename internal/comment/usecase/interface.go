// Package usecase implements comment creation and listing.
package usecase

import (
	"context"

	"github.com/allisson/social/internal/comment/domain"
)

// CommentRepository is the persistence contract backed by the comment stored procedures.
type CommentRepository interface {
	// Create stores comment and sets its ID. Returns postDomain.ErrPostNotFound
	// when the post does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByPost returns the comments of postID, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
}

// UseCase defines the comment operations exposed to the HTTP layer.
type UseCase interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
}
