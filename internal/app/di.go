// Package app provides the dependency injection container that assembles the
// application. Components are created on first access and cached.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/social/internal/config"
	"github.com/allisson/social/internal/database"
	"github.com/allisson/social/internal/http"
	"github.com/allisson/social/internal/metrics"
)

// Supported values of DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// lazy caches the result of the first init call, error included.
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (l *lazy[T]) get(init func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = init()
	})
	return l.value, l.err
}

// Container holds all application dependencies.
type Container struct {
	config *config.Config

	loggerInit sync.Once
	logger     *slog.Logger

	db        lazy[*sql.DB]
	txManager lazy[database.TxManager]

	metricsProvider lazy[*metrics.Provider]
	businessMetrics lazy[metrics.BusinessMetrics]

	auth    authComponents
	user    userComponents
	post    postComponents
	comment commentComponents

	httpServer    lazy[*http.Server]
	metricsServer lazy[*http.MetricsServer]
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger writing to stdout at the configured level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	return c.db.get(c.initDB)
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	return c.txManager.get(func() (database.TxManager, error) {
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
		}
		return database.NewTxManager(db), nil
	})
}

// MetricsProvider returns the Prometheus backed meter provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	return c.metricsProvider.get(func() (*metrics.Provider, error) {
		if !c.config.MetricsEnabled {
			return nil, nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics provider: %w", err)
		}
		return provider, nil
	})
}

// BusinessMetrics returns the operation recorder shared by the use case decorators.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	return c.businessMetrics.get(func() (metrics.BusinessMetrics, error) {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return metrics.NewNoOpBusinessMetrics(), nil
		}
		return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	})
}

// HTTPServer returns the API server with its router set up. ctx bounds the
// background work started by the router.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	return c.httpServer.get(func() (*http.Server, error) {
		return c.initHTTPServer(ctx)
	})
}

// MetricsServer returns the server exposing /metrics.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	return c.metricsServer.get(func() (*http.MetricsServer, error) {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, err
		}
		return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
	})
}

// Shutdown releases the metrics provider and the database, collecting all
// errors. Servers are stopped by whoever started them.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if provider := c.metricsProvider.value; provider != nil {
		if err := provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if db := c.db.value; db != nil {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initDB() (*sql.DB, error) {
	switch c.config.DBDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, err
	}

	postHandler, err := c.PostHandler()
	if err != nil {
		return nil, err
	}

	commentHandler, err := c.CommentHandler()
	if err != nil {
		return nil, err
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(ctx, c.config, tokenCodec, userHandler, postHandler, commentHandler, provider)

	return server, nil
}
