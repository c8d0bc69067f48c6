package dto

import (
	"time"

	"github.com/allisson/social/internal/comment/domain"
)

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	CommentID int64     `json:"commentId"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapCommentToResponse converts a domain comment to an API response.
func MapCommentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		UserName:  comment.UserName,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// MapCommentsToResponse converts domain comments, never returning nil.
func MapCommentsToResponse(comments []*domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, MapCommentToResponse(comment))
	}
	return responses
}
