package usecase

import (
	"context"
	"time"

	"github.com/allisson/social/internal/metrics"
	"github.com/allisson/social/internal/post/domain"
)

const metricsDomain = "post"

type postUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPostUseCaseWithMetrics wraps useCase with operation metrics.
func NewPostUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &postUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *postUseCaseWithMetrics) Create(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	start := time.Now()
	post, err := p.next.Create(ctx, input)
	metrics.Observe(ctx, p.metrics, metricsDomain, "post_create", start, err)
	return post, err
}

func (p *postUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Post, error) {
	start := time.Now()
	posts, err := p.next.List(ctx)
	metrics.Observe(ctx, p.metrics, metricsDomain, "post_list", start, err)
	return posts, err
}

func (p *postUseCaseWithMetrics) Edit(ctx context.Context, input EditPostInput) error {
	start := time.Now()
	err := p.next.Edit(ctx, input)
	metrics.Observe(ctx, p.metrics, metricsDomain, "post_edit", start, err)
	return err
}

func (p *postUseCaseWithMetrics) Delete(ctx context.Context, input DeletePostInput) error {
	start := time.Now()
	err := p.next.Delete(ctx, input)
	metrics.Observe(ctx, p.metrics, metricsDomain, "post_delete", start, err)
	return err
}
