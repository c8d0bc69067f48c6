// Package repository persists users through the user stored procedures.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	"github.com/allisson/social/internal/user/domain"
)

// MySQLUserRepository calls the MySQL user procedures.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create calls sp_create_user. The procedure hashes the password.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `CALL sp_create_user(?, ?, ?, ?, ?)`,
		user.UserName, user.Email, user.Password, user.PhoneNumber, user.Biography)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Login calls sp_user_login, which returns a row only when the password matches.
func (r *MySQLUserRepository) Login(ctx context.Context, phoneNumber, password string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	var user domain.User
	err := querier.QueryRowContext(ctx, `CALL sp_user_login(?, ?)`, phoneNumber, password).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PhoneNumber, &user.Biography, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "failed to login user")
	}
	return &user, nil
}

// UpdateBiography calls sp_update_user_biography, which reports the matched row count.
func (r *MySQLUserRepository) UpdateBiography(ctx context.Context, userID int64, biography *string) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `CALL sp_update_user_biography(?, ?)`, userID, biography).Scan(&affected)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user biography")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
