// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server binds to.
	ServerHost string
	// ServerPort is the port the API server listens on.
	ServerPort int
	// ServerRequestTimeout bounds the lifetime of a single request context.
	ServerRequestTimeout time.Duration

	// DBDriver is the database driver ("mysql" or "postgres").
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string

	// AuthTokenLifetime is how long an identity token stays valid after issuance.
	AuthTokenLifetime time.Duration
	// AuthTokenSecret is the KMS encrypted, base64 encoded token signing secret.
	// When empty a random signing key is generated at startup.
	AuthTokenSecret string

	// KMSKeyURI is the gocloud.dev/secrets keeper URI used to decrypt AuthTokenSecret.
	KMSKeyURI string

	// RateLimitEnabled enables per-user rate limiting on authenticated routes.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained rate allowed per user.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size allowed per user.
	RateLimitBurst int

	// RateLimitAuthEnabled enables per-IP rate limiting on register and login.
	RateLimitAuthEnabled bool
	// RateLimitAuthRequestsPerSec is the sustained rate allowed per IP on register and login.
	RateLimitAuthRequestsPerSec float64
	// RateLimitAuthBurst is the burst size allowed per IP on register and login.
	RateLimitAuthBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace string
	// MetricsPort is the port for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and the nearest .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost:           env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:           env.GetInt("SERVER_PORT", 8080),
		ServerRequestTimeout: env.GetDuration("SERVER_REQUEST_TIMEOUT_SECONDS", 30, time.Second),

		// Database
		DBDriver: env.GetString("DB_DRIVER", "mysql"),
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"user:password@tcp(localhost:3306)/social?parseTime=true&multiStatements=true",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Identity tokens
		AuthTokenLifetime: env.GetDuration("AUTH_TOKEN_LIFETIME_MS", 86400000, time.Millisecond),
		AuthTokenSecret:   env.GetString("AUTH_TOKEN_SECRET", ""),
		KMSKeyURI:         env.GetString("KMS_KEY_URI", ""),

		// Rate limiting (authenticated routes, keyed by user)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Rate limiting (register and login, keyed by IP)
		RateLimitAuthEnabled:        env.GetBool("RATE_LIMIT_AUTH_ENABLED", true),
		RateLimitAuthRequestsPerSec: env.GetFloat64("RATE_LIMIT_AUTH_REQUESTS_PER_SEC", 5.0),
		RateLimitAuthBurst:          env.GetInt("RATE_LIMIT_AUTH_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "social"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the Gin mode matching the log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv walks up from the working directory and loads the first .env found.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
