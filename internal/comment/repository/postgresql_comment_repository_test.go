package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/social/internal/comment/domain"
	postDomain "github.com/allisson/social/internal/post/domain"
)

func newPostgreSQLRepo(t *testing.T) (*PostgreSQLCommentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLCommentRepository(db), mock
}

func TestPostgreSQLCommentRepository_Create(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT sp_create_comment($1, $2, $3)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)
		comment := &domain.Comment{UserID: 1, PostID: 10, Content: "nice"}

		mock.ExpectQuery(query).
			WithArgs(int64(1), int64(10), "nice").
			WillReturnRows(sqlmock.NewRows([]string{"sp_create_comment"}).AddRow(7))

		require.NoError(t, repo.Create(ctx, comment))
		assert.Equal(t, int64(7), comment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_PostNotFound", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Create(ctx, &domain.Comment{UserID: 1, PostID: 999, Content: "x"})

		assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
	})
}

func TestPostgreSQLCommentRepository_ListByPost(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(
		`SELECT comment_id, post_id, user_id, user_name, content, created_at FROM sp_get_post_comments($1)`,
	)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)
		createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(100, 10, 1, "alice", "first", createdAt))

		comments, err := repo.ListByPost(ctx, 10)

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, int64(100), comments[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Query", func(t *testing.T) {
		repo, mock := newPostgreSQLRepo(t)

		mock.ExpectQuery(query).WillReturnError(sql.ErrConnDone)

		_, err := repo.ListByPost(ctx, 10)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}
