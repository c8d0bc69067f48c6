// Package http provides the gin handlers of the user endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/social/internal/auth/domain"
	authHTTP "github.com/allisson/social/internal/auth/http"
	"github.com/allisson/social/internal/httputil"
	"github.com/allisson/social/internal/user/http/dto"
	userUseCase "github.com/allisson/social/internal/user/usecase"
	customValidation "github.com/allisson/social/internal/validation"
)

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, userName string) (*authDomain.IssuedToken, error)
}

// UserHandler handles registration, login and profile updates.
type UserHandler struct {
	userUseCase userUseCase.UseCase
	tokenIssuer TokenIssuer
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(
	useCase userUseCase.UseCase,
	tokenIssuer TokenIssuer,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// RegisterHandler creates an account and signs the caller in.
// POST /api/user/register - No authentication required.
// Returns 201 Created with the token and the stored user.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), userUseCase.RegisterUserInput{
		UserName:    req.UserName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Biography:   req.Biography,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	token, err := h.tokenIssuer.Issue(user.ID, user.UserName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusCreated, "registration successful", dto.MapAuthResponse(user, token))
}

// LoginHandler verifies phone number and password and issues a token.
// POST /api/user/login - No authentication required.
// Returns 200 OK with the token and the stored user.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Login(c.Request.Context(), userUseCase.LoginInput{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	token, err := h.tokenIssuer.Issue(user.ID, user.UserName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "login successful", dto.MapAuthResponse(user, token))
}

// UpdateHandler replaces the biography of the calling user.
// PUT /api/user/update - Requires a resolved identity.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrIdentityRequired, h.logger)
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.userUseCase.UpdateBiography(c.Request.Context(), userUseCase.UpdateBiographyInput{
		UserID:    identity.UserID,
		Biography: req.Biography,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.OK(c, http.StatusOK, "profile updated", true)
}
