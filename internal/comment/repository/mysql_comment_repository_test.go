package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/social/internal/comment/domain"
	postDomain "github.com/allisson/social/internal/post/domain"
)

var commentColumns = []string{"comment_id", "post_id", "user_id", "user_name", "content", "created_at"}

func newMySQLRepo(t *testing.T) (*MySQLCommentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLCommentRepository(db), mock
}

func TestMySQLCommentRepository_Create(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`CALL sp_create_comment(?, ?, ?)`)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)
		comment := &domain.Comment{UserID: 1, PostID: 10, Content: "nice"}

		mock.ExpectQuery(query).
			WithArgs(int64(1), int64(10), "nice").
			WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(100))

		require.NoError(t, repo.Create(ctx, comment))
		assert.Equal(t, int64(100), comment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_PostNotFound", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

		err := repo.Create(ctx, &domain.Comment{UserID: 1, PostID: 999, Content: "x"})

		assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
	})

	t.Run("Error_Database", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).WillReturnError(sql.ErrConnDone)

		err := repo.Create(ctx, &domain.Comment{UserID: 1, PostID: 10, Content: "x"})

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, postDomain.ErrPostNotFound)
	})
}

func TestMySQLCommentRepository_ListByPost(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`CALL sp_get_post_comments(?)`)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(100, 10, 1, "alice", "first", createdAt).
				AddRow(101, 10, 2, "bob", "second", createdAt.Add(time.Minute)))

		comments, err := repo.ListByPost(ctx, 10)

		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, &domain.Comment{
			ID: 100, PostID: 10, UserID: 1, UserName: "alice", Content: "first", CreatedAt: createdAt,
		}, comments[0])
		assert.Equal(t, "bob", comments[1].UserName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).WithArgs(int64(10)).WillReturnRows(sqlmock.NewRows(commentColumns))

		comments, err := repo.ListByPost(ctx, 10)

		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("Error_Scan", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(commentColumns).AddRow("not-a-number", 10, 1, "alice", "x", createdAt))

		_, err := repo.ListByPost(ctx, 10)

		assert.ErrorContains(t, err, "failed to scan comment")
	})

	t.Run("Error_RowError", func(t *testing.T) {
		repo, mock := newMySQLRepo(t)

		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(100, 10, 1, "alice", "x", createdAt).
				RowError(0, sql.ErrConnDone))

		_, err := repo.ListByPost(ctx, 10)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}
