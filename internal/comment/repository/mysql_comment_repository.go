// Package repository persists comments through the comment stored procedures.
package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/social/internal/comment/domain"
	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	postDomain "github.com/allisson/social/internal/post/domain"
)

// MySQLCommentRepository calls the MySQL comment procedures.
type MySQLCommentRepository struct {
	db *sql.DB
}

// NewMySQLCommentRepository creates a MySQLCommentRepository.
func NewMySQLCommentRepository(db *sql.DB) *MySQLCommentRepository {
	return &MySQLCommentRepository{db: db}
}

// Create calls sp_create_comment, which returns the new comment_id.
func (r *MySQLCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `CALL sp_create_comment(?, ?, ?)`,
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
func (r *MySQLCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `CALL sp_get_post_comments(?)`, postID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	return scanComments(rows)
}

func scanComments(rows *sql.Rows) ([]*domain.Comment, error) {
	defer func() {
		_ = rows.Close()
	}()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.UserID,
			&comment.UserName,
			&comment.Content,
			&comment.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan comment")
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate comments")
	}
	return comments, nil
}
