package handlers

import (
	"context"
	"net/http"

	"socialwall/internal/service"
)

type contextKey struct{ name string }

var claimsKey = &contextKey{"claims"}

// ContextWithClaims attaches the authenticated caller to ctx.
func ContextWithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok && claims != nil
}

// currentUserID returns the caller's id or writes a 401.
func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeClientError(w, service.KindUnauthorized, "authentication required")
		return "", false
	}
	return claims.UserID, true
}
