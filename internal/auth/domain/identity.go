// Package domain defines the identity carried by signed tokens.
package domain

import "time"

// TokenType is the scheme announced to clients together with an issued token.
const TokenType = "Bearer"

// Identity is the caller resolved from a valid token. It lives only as long as
// the request that carries it.
type Identity struct {
	UserID   int64
	UserName string
}

// Principal marks a request as authenticated. It carries no roles or permissions.
type Principal struct {
	Name string
}

// Principal returns the marker attached next to the identity.
func (i Identity) Principal() Principal {
	return Principal{Name: i.UserName}
}

// IssuedToken is a freshly signed token with its validity window.
type IssuedToken struct {
	Token     string
	Type      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
