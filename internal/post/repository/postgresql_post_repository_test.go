package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/social/internal/post/domain"
	userDomain "github.com/allisson/social/internal/user/domain"
)

func newPostgreSQLRepo(t *testing.T) (*PostgreSQLPostRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLPostRepository(db), mock
}

func TestPostgreSQLPostRepository_Create(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT sp_create_post($1, $2)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)
		post := &domain.Post{UserID: 1, Content: "hello"}

		mock.ExpectQuery(query).
			WithArgs(int64(1), "hello").
			WillReturnRows(sqlmock.NewRows([]string{"sp_create_post"}).AddRow(10))

		require.NoError(t, repo.Create(ctx, post))
		assert.Equal(t, int64(10), post.ID)
	})

	t.Run("Error_UnknownUser", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: "23503"})

		assert.ErrorIs(t, repo.Create(ctx, &domain.Post{UserID: 404, Content: "x"}), userDomain.ErrUserNotFound)
	})
}

func TestPostgreSQLPostRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, mock := newPostgreSQLRepo(t)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, user_id, user_name, content, created_at FROM sp_get_all_posts()`)).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(10, 1, "alice", "first", createdAt))

	posts, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "alice", posts[0].UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPostRepository_EditDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Edit", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT sp_edit_post($1, $2)`)).
			WithArgs(int64(10), "edited").
			WillReturnRows(sqlmock.NewRows([]string{"sp_edit_post"}).AddRow(1))

		assert.NoError(t, repo.Edit(ctx, 10, "edited"))
	})

	t.Run("Error_DeleteNotFound", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT sp_delete_post($1)`)).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"sp_delete_post"}).AddRow(0))

		assert.ErrorIs(t, repo.Delete(ctx, 999), domain.ErrPostNotFound)
	})
}
