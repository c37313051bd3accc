package backend

import "context"

type tokenKey struct{}

// WithToken returns a context carrying a bearer token. Gateway clients
// attach it as an Authorization header on requests they build from the
// context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts a bearer token previously stored with
// WithToken. Returns "" when the context carries no token.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
