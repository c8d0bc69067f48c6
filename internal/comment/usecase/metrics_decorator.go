package usecase

import (
	"context"
	"time"

	"github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/metrics"
)

type commentUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewCommentUseCaseWithMetrics wraps useCase with operation metrics.
func NewCommentUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &commentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *commentUseCaseWithMetrics) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	start := time.Now()
	comment, err := c.next.Create(ctx, input)
	metrics.Observe(ctx, c.metrics, "comment", "comment_create", start, err)
	return comment, err
}

func (c *commentUseCaseWithMetrics) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	start := time.Now()
	comments, err := c.next.ListByPost(ctx, postID)
	metrics.Observe(ctx, c.metrics, "comment", "comment_list", start, err)
	return comments, err
}
