package dto

import (
	"time"

	commentDTO "github.com/allisson/social/internal/comment/http/dto"
	"github.com/allisson/social/internal/post/domain"
)

// PostResponse represents a post and its comments in API responses.
type PostResponse struct {
	PostID    int64                        `json:"postId"`
	UserID    int64                        `json:"userId"`
	UserName  string                       `json:"userName"`
	Content   string                       `json:"content"`
	CreatedAt time.Time                    `json:"createdAt"`
	Comments  []commentDTO.CommentResponse `json:"comments"`
}

// MapPostToResponse converts a domain post to an API response.
func MapPostToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		PostID:    post.ID,
		UserID:    post.UserID,
		UserName:  post.UserName,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		Comments:  commentDTO.MapCommentsToResponse(post.Comments),
	}
}

// MapPostsToResponse converts domain posts, never returning nil.
func MapPostsToResponse(posts []*domain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, MapPostToResponse(post))
	}
	return responses
}
