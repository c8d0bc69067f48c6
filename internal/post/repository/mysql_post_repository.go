// Package repository persists posts through the post stored procedures.
package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	"github.com/allisson/social/internal/post/domain"
	userDomain "github.com/allisson/social/internal/user/domain"
)

// MySQLPostRepository calls the MySQL post procedures.
type MySQLPostRepository struct {
	db *sql.DB
}

// NewMySQLPostRepository creates a MySQLPostRepository.
func NewMySQLPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{db: db}
}

// Create calls sp_create_post, which returns the new post_id.
func (r *MySQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `CALL sp_create_post(?, ?)`, post.UserID, post.Content).Scan(&post.ID)
	return createError(err)
}

// List calls sp_get_all_posts.
func (r *MySQLPostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `CALL sp_get_all_posts()`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts")
	}
	return scanPosts(rows)
}

// Edit calls sp_edit_post, which reports the matched row count.
func (r *MySQLPostRepository) Edit(ctx context.Context, postID int64, content string) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `CALL sp_edit_post(?, ?)`, postID, content).Scan(&affected)
	return affectedError(affected, err, "failed to edit post")
}

// Delete calls sp_delete_post, which removes the comments before the post.
func (r *MySQLPostRepository) Delete(ctx context.Context, postID int64) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `CALL sp_delete_post(?)`, postID).Scan(&affected)
	return affectedError(affected, err, "failed to delete post")
}

func createError(err error) error {
	if err == nil {
		return nil
	}
	if database.IsForeignKeyViolation(err) {
		return userDomain.ErrUserNotFound
	}
	return apperrors.Wrap(err, "failed to create post")
}

func affectedError(affected int64, err error, message string) error {
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func scanPosts(rows *sql.Rows) ([]*domain.Post, error) {
	defer func() {
		_ = rows.Close()
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.UserName,
			&post.Content,
			&post.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan post")
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate posts")
	}
	return posts, nil
}
