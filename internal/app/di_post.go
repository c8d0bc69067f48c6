package app

import (
	"fmt"

	postHTTP "github.com/allisson/social/internal/post/http"
	postRepository "github.com/allisson/social/internal/post/repository"
	postUseCase "github.com/allisson/social/internal/post/usecase"
)

type postComponents struct {
	repository lazy[postUseCase.PostRepository]
	useCase    lazy[postUseCase.UseCase]
	handler    lazy[*postHTTP.PostHandler]
}

// PostRepository returns the post repository based on database driver.
func (c *Container) PostRepository() (postUseCase.PostRepository, error) {
	return c.post.repository.get(c.initPostRepository)
}

// PostUseCase returns the post use case.
func (c *Container) PostUseCase() (postUseCase.UseCase, error) {
	return c.post.useCase.get(c.initPostUseCase)
}

// PostHandler returns the HTTP handler for post operations.
func (c *Container) PostHandler() (*postHTTP.PostHandler, error) {
	return c.post.handler.get(c.initPostHandler)
}

func (c *Container) initPostRepository() (postUseCase.PostRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for post repository: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return postRepository.NewPostgreSQLPostRepository(db), nil
	case DriverMySQL:
		return postRepository.NewMySQLPostRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initPostUseCase() (postUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for post use case: %w", err)
	}

	repo, err := c.PostRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get post repository for post use case: %w", err)
	}

	// Posts are listed together with their comments.
	comments, err := c.CommentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment repository for post use case: %w", err)
	}

	baseUseCase := postUseCase.NewPostUseCase(txManager, repo, comments)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for post use case: %w", err)
		}
		return postUseCase.NewPostUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initPostHandler() (*postHTTP.PostHandler, error) {
	useCase, err := c.PostUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get post use case for post handler: %w", err)
	}

	return postHTTP.NewPostHandler(useCase, c.Logger()), nil
}
