package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/social/internal/user/domain"
)

func newPostgreSQLRepo(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLUserRepository(db), mock
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT sp_create_user($1, $2, $3, $4, $5)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectExec(query).
			WithArgs("bob", nil, "secret", "+5511999998888", "hi").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, &domain.User{
			UserName:    "bob",
			Password:    "secret",
			PhoneNumber: "+5511999998888",
			Biography:   strPtr("hi"),
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectExec(query).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.User{UserName: "bob", Password: "secret", PhoneNumber: "5511999998888"})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_Login(t *testing.T) {
	ctx := context.Background()
	query := `SELECT user_id, user_name, email, phone_number, biography, created_at\s+FROM sp_user_login\(\$1, \$2\)`

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)
		createdAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs("5511999998888", "secret").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(7, "bob", nil, "5511999998888", "hi", createdAt))

		user, err := repo.Login(ctx, "5511999998888", "secret")

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Nil(t, user.Email)
		require.NotNil(t, user.Biography)
		assert.Equal(t, "hi", *user.Biography)
	})

	t.Run("Error_WrongCredentials", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.Login(ctx, "5511999998888", "wrong")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestPostgreSQLUserRepository_UpdateBiography(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT sp_update_user_biography($1, $2)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).
			WithArgs(int64(7), nil).
			WillReturnRows(sqlmock.NewRows([]string{"sp_update_user_biography"}).AddRow(1))

		assert.NoError(t, repo.UpdateBiography(ctx, 7, nil))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"sp_update_user_biography"}).AddRow(0))

		assert.ErrorIs(t, repo.UpdateBiography(ctx, 7, nil), domain.ErrUserNotFound)
	})

	t.Run("Error_Storage", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).WillReturnError(errors.New("canceling statement"))

		assert.Error(t, repo.UpdateBiography(ctx, 7, nil))
	})
}
