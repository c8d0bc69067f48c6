package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	postDomain "github.com/allisson/social/internal/post/domain"
)

// PostgreSQLCommentRepository calls the PostgreSQL comment functions.
type PostgreSQLCommentRepository struct {
	db *sql.DB
}

// NewPostgreSQLCommentRepository creates a PostgreSQLCommentRepository.
func NewPostgreSQLCommentRepository(db *sql.DB) *PostgreSQLCommentRepository {
	return &PostgreSQLCommentRepository{db: db}
}

// Create calls sp_create_comment, which returns the new comment_id.
func (r *PostgreSQLCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT sp_create_comment($1, $2, $3)`,
		comment.UserID, comment.PostID, comment.Content).Scan(&comment.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return postDomain.ErrPostNotFound
		}
		return apperrors.Wrap(err, "failed to create comment")
	}
	return nil
}

// ListByPost calls sp_get_post_comments.
func (r *PostgreSQLCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx,
		`SELECT comment_id, post_id, user_id, user_name, content, created_at FROM sp_get_post_comments($1)`,
		postID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	return scanComments(rows)
}
