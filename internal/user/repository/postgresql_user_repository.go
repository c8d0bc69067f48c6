package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	"github.com/allisson/social/internal/user/domain"
)

// PostgreSQLUserRepository calls the PostgreSQL user functions.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `SELECT sp_create_user($1, $2, $3, $4, $5)`,
		user.UserName, user.Email, user.Password, user.PhoneNumber, user.Biography)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

func (r *PostgreSQLUserRepository) Login(ctx context.Context, phoneNumber, password string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT user_id, user_name, email, phone_number, biography, created_at
			  FROM sp_user_login($1, $2)`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, phoneNumber, password).Scan(
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

func (r *PostgreSQLUserRepository) UpdateBiography(ctx context.Context, userID int64, biography *string) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `SELECT sp_update_user_biography($1, $2)`, userID, biography).Scan(&affected)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user biography")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
