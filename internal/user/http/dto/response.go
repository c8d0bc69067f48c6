package dto

import (
	"time"

	authDomain "github.com/allisson/social/internal/auth/domain"
	"github.com/allisson/social/internal/user/domain"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Email     *string   `json:"email"`
	Biography *string   `json:"biography"`
}

// MapAuthResponse combines the stored user with the token issued for it.
func MapAuthResponse(user *domain.User, token *authDomain.IssuedToken) AuthResponse {
	return AuthResponse{
		Token:     token.Token,
		Type:      token.Type,
		ExpiresAt: token.ExpiresAt,
		UserID:    user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Biography: user.Biography,
	}
}
