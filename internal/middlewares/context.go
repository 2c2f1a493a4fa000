package middlewares

import (
	"context"

	"github.com/sbilibin2017/comics-keeper/internal/jwt"
)

type claimsKey struct{}

// SetClaimsToContext stores the authenticated claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves the claims stored by AuthMiddleware. Returns nil if not present.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}
