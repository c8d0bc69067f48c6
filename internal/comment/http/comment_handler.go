// Package http provides the gin handlers of the comment endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/social/internal/auth/domain"
	authHTTP "github.com/allisson/social/internal/auth/http"
	"github.com/allisson/social/internal/comment/http/dto"
	commentUseCase "github.com/allisson/social/internal/comment/usecase"
	"github.com/allisson/social/internal/httputil"
	customValidation "github.com/allisson/social/internal/validation"
)

// CommentHandler handles comment creation and listing.
type CommentHandler struct {
	commentUseCase commentUseCase.UseCase
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler with required dependencies.
func NewCommentHandler(useCase commentUseCase.UseCase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: useCase,
		logger:         logger,
	}
}

// CreateHandler adds a comment to a post on behalf of the caller.
// POST /api/comments/create - Requires a resolved identity.
func (h *CommentHandler) CreateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrIdentityRequired, h.logger)
		return
	}

	var req dto.CreateCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	_, err := h.commentUseCase.Create(c.Request.Context(), commentUseCase.CreateCommentInput{
		UserID:  identity.UserID,
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusCreated, "comment created", true)
}

// ListHandler returns the comments of one post.
// GET /api/comments/list/:postId - Anonymous callers allowed.
func (h *CommentHandler) ListHandler(c *gin.Context) {
	postID, err := httputil.ParseIDParam(c, "postId")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	comments, err := h.commentUseCase.ListByPost(c.Request.Context(), postID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "", dto.MapCommentsToResponse(comments))
}
