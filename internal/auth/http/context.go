// Package http provides the gin middleware that resolves caller identities from
// bearer tokens and guards protected routes.
package http

import (
	"context"

	authDomain "github.com/allisson/social/internal/auth/domain"
)

type identityKey struct{}

type principalKey struct{}

// WithIdentity stores the resolved caller identity in the context.
func WithIdentity(ctx context.Context, identity authDomain.Identity) context.Context {
	ctx = context.WithValue(ctx, identityKey{}, identity)
	return context.WithValue(ctx, principalKey{}, identity.Principal())
}

// GetIdentity returns the identity attached by IdentityMiddleware. The second
// value is false for anonymous requests.
func GetIdentity(ctx context.Context) (authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(authDomain.Identity)
	return identity, ok
}

// GetPrincipal returns the authenticated principal marker.
func GetPrincipal(ctx context.Context) (authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(authDomain.Principal)
	return principal, ok
}
