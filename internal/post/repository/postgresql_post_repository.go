package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/social/internal/database"
	apperrors "github.com/allisson/social/internal/errors"
	"github.com/allisson/social/internal/post/domain"
)

// PostgreSQLPostRepository calls the PostgreSQL post functions.
type PostgreSQLPostRepository struct {
	db *sql.DB
}

// NewPostgreSQLPostRepository creates a PostgreSQLPostRepository.
func NewPostgreSQLPostRepository(db *sql.DB) *PostgreSQLPostRepository {
	return &PostgreSQLPostRepository{db: db}
}

// Create calls sp_create_post, which returns the new post_id.
func (r *PostgreSQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT sp_create_post($1, $2)`, post.UserID, post.Content).Scan(&post.ID)
	return createError(err)
}

// List calls sp_get_all_posts.
func (r *PostgreSQLPostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx,
		`SELECT post_id, user_id, user_name, content, created_at FROM sp_get_all_posts()`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts")
	}
	return scanPosts(rows)
}

// Edit calls sp_edit_post, which returns the matched row count.
func (r *PostgreSQLPostRepository) Edit(ctx context.Context, postID int64, content string) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `SELECT sp_edit_post($1, $2)`, postID, content).Scan(&affected)
	return affectedError(affected, err, "failed to edit post")
}

// Delete calls sp_delete_post, which removes the comments before the post.
func (r *PostgreSQLPostRepository) Delete(ctx context.Context, postID int64) error {
	querier := database.GetTx(ctx, r.db)

	var affected int64
	err := querier.QueryRowContext(ctx, `SELECT sp_delete_post($1)`, postID).Scan(&affected)
	return affectedError(affected, err, "failed to delete post")
}
