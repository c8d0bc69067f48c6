// Package usecase implements post creation, listing, editing and deletion.
package usecase

import (
	"context"

	commentDomain "github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/post/domain"
)

// PostRepository is the persistence contract backed by the post stored procedures.
type PostRepository interface {
	// Create stores post and sets its ID.
	Create(ctx context.Context, post *domain.Post) error

	// List returns every post, newest first, without comments.
	List(ctx context.Context) ([]*domain.Post, error)

	// Edit replaces the content. Returns domain.ErrPostNotFound when no row matched.
	Edit(ctx context.Context, postID int64, content string) error

	// Delete removes the post and its comments. Returns domain.ErrPostNotFound
	// when no row matched.
	Delete(ctx context.Context, postID int64) error
}

// CommentLister loads the comments attached to a post listing.
type CommentLister interface {
	ListByPost(ctx context.Context, postID int64) ([]*commentDomain.Comment, error)
}

// UseCase defines the post operations exposed to the HTTP layer.
type UseCase interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Edit(ctx context.Context, input EditPostInput) error
	Delete(ctx context.Context, input DeletePostInput) error
}
