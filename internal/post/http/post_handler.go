// Package http provides the gin handlers of the post endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/social/internal/auth/domain"
	authHTTP "github.com/allisson/social/internal/auth/http"
	"github.com/allisson/social/internal/httputil"
	"github.com/allisson/social/internal/post/http/dto"
	postUseCase "github.com/allisson/social/internal/post/usecase"
	customValidation "github.com/allisson/social/internal/validation"
)

// PostHandler handles post creation, listing, editing and deletion.
type PostHandler struct {
	postUseCase postUseCase.UseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler with required dependencies.
func NewPostHandler(useCase postUseCase.UseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: useCase,
		logger:      logger,
	}
}

func (h *PostHandler) requireIdentity(c *gin.Context) (authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrIdentityRequired, h.logger)
	}
	return identity, ok
}

// CreateHandler publishes a post for the caller.
// POST /api/post/create - Requires a resolved identity.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	_, err := h.postUseCase.Create(c.Request.Context(), postUseCase.CreatePostInput{
		UserID:  identity.UserID,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusCreated, "post created", true)
}

// ListHandler returns every post with its comments.
// GET /api/post/list - Anonymous callers allowed.
func (h *PostHandler) ListHandler(c *gin.Context) {
	posts, err := h.postUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "", dto.MapPostsToResponse(posts))
}

// EditHandler replaces the content of a post.
// PUT /api/post/edit - Requires a resolved identity.
func (h *PostHandler) EditHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.EditPostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.postUseCase.Edit(c.Request.Context(), postUseCase.EditPostInput{
		UserID:  identity.UserID,
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "post updated", true)
}

// DeleteHandler removes a post and its comments.
// DELETE /api/post/delete/:postId - Requires a resolved identity.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	postID, err := httputil.ParseIDParam(c, "postId")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	err = h.postUseCase.Delete(c.Request.Context(), postUseCase.DeletePostInput{
		UserID: identity.UserID,
		PostID: postID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "post deleted", true)
}
