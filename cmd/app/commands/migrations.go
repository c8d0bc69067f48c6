package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration under basePath/<driver>.
// Returns nil when the schema is already up to date.
func RunMigrations(logger *slog.Logger, basePath, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	sourceURL, databaseURL := migrationURLs(basePath, driver, connectionString)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationURLs maps the driver configuration to golang-migrate URLs. MySQL DSNs
// are written for go-sql-driver/mysql, so they get the mysql:// scheme and
// multiStatements, which stored procedure files need.
func migrationURLs(basePath, driver, connectionString string) (string, string) {
	if driver != "mysql" {
		return "file://" + filepath.ToSlash(filepath.Join(basePath, "postgresql")), connectionString
	}

	databaseURL := connectionString
	if !strings.HasPrefix(databaseURL, "mysql://") {
		databaseURL = "mysql://" + databaseURL
	}
	if !strings.Contains(databaseURL, "multiStatements=") {
		separator := "?"
		if strings.Contains(databaseURL, "?") {
			separator = "&"
		}
		databaseURL += separator + "multiStatements=true"
	}

	return "file://" + filepath.ToSlash(filepath.Join(basePath, "mysql")), databaseURL
}
