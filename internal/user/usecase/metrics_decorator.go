package usecase

import (
	"context"
	"time"

	"github.com/allisson/social/internal/metrics"
	"github.com/allisson/social/internal/user/domain"
)

const metricsDomain = "user"

type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps useCase with operation metrics.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_register", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Login(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_login", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) UpdateBiography(ctx context.Context, input UpdateBiographyInput) error {
	start := time.Now()
	err := u.next.UpdateBiography(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "user_update_biography", start, err)
	return err
}
