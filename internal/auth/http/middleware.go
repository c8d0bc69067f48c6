package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/social/internal/auth/domain"
	authService "github.com/allisson/social/internal/auth/service"
	"github.com/allisson/social/internal/httputil"
)

// Paths that never carry a token. Matching is exact.
const (
	RegisterPath = "/api/user/register"
	LoginPath    = "/api/user/login"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the caller from an "Authorization: Bearer <token>"
// header and stores it in the request context.
//
// The middleware never rejects a request. A missing header, a header without
// the case-sensitive "Bearer " prefix, or a token that fails validation all
// leave the request anonymous. Routes that need a caller add
// RequireIdentityMiddleware.
//
// Requests to RegisterPath and LoginPath skip token processing entirely.
func IdentityMiddleware(codec authService.TokenCodec, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == RegisterPath || path == LoginPath {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}

		identity, err := codec.Validate(authHeader[len(bearerPrefix):])
		if err != nil {
			logger.Debug("identity token rejected",
				slog.String("path", path),
				slog.Any("error", err))
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		logger.Debug("identity resolved",
			slog.Int64("user_id", identity.UserID),
			slog.String("user_name", identity.UserName))

		c.Next()
	}
}

// RequireIdentityMiddleware answers 401 when IdentityMiddleware left the request anonymous.
func RequireIdentityMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c.Request.Context()); !ok {
			httputil.HandleErrorGin(c, authDomain.ErrIdentityRequired, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}
