package app

import (
	"fmt"

	userHTTP "github.com/allisson/social/internal/user/http"
	userRepository "github.com/allisson/social/internal/user/repository"
	userUseCase "github.com/allisson/social/internal/user/usecase"
)

type userComponents struct {
	repository lazy[userUseCase.UserRepository]
	useCase    lazy[userUseCase.UseCase]
	handler    lazy[*userHTTP.UserHandler]
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	return c.user.repository.get(c.initUserRepository)
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	return c.user.useCase.get(c.initUserUseCase)
}

// UserHandler returns the HTTP handler for registration, login and profile updates.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	return c.user.handler.get(c.initUserHandler)
}

func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case DriverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case DriverMySQL:
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	repo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(txManager, repo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for user handler: %w", err)
	}

	return userHTTP.NewUserHandler(useCase, tokenCodec, c.Logger()), nil
}
