package app

import (
	"fmt"

	commentHTTP "github.com/allisson/social/internal/comment/http"
	commentRepository "github.com/allisson/social/internal/comment/repository"
	commentUseCase "github.com/allisson/social/internal/comment/usecase"
)

type commentComponents struct {
	repository lazy[commentUseCase.CommentRepository]
	useCase    lazy[commentUseCase.UseCase]
	handler    lazy[*commentHTTP.CommentHandler]
}

// CommentRepository returns the comment repository based on database driver.
func (c *Container) CommentRepository() (commentUseCase.CommentRepository, error) {
	return c.comment.repository.get(c.initCommentRepository)
}

// CommentUseCase returns the comment use case.
func (c *Container) CommentUseCase() (commentUseCase.UseCase, error) {
	return c.comment.useCase.get(c.initCommentUseCase)
}

// CommentHandler returns the HTTP handler for comment operations.
func (c *Container) CommentHandler() (*commentHTTP.CommentHandler, error) {
	return c.comment.handler.get(c.initCommentHandler)
}

func (c *Container) initCommentRepository() (commentUseCase.CommentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for comment repository: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return commentRepository.NewPostgreSQLCommentRepository(db), nil
	case DriverMySQL:
		return commentRepository.NewMySQLCommentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCommentUseCase() (commentUseCase.UseCase, error) {
	repo, err := c.CommentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment repository for comment use case: %w", err)
	}

	baseUseCase := commentUseCase.NewCommentUseCase(repo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for comment use case: %w", err)
		}
		return commentUseCase.NewCommentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initCommentHandler() (*commentHTTP.CommentHandler, error) {
	useCase, err := c.CommentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment use case for comment handler: %w", err)
	}

	return commentHTTP.NewCommentHandler(useCase, c.Logger()), nil
}
