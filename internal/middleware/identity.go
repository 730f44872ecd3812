package middleware

// identity.go carries the owner id from the JWT middleware to the layers
// below the HTTP surface. The id travels in the request context so that the
// gateway, which only sees context.Context, can resolve it through
// ContextIdentity without depending on echo.

import "context"

type ownerKey struct{}

// WithOwner returns a context carrying the authenticated owner id.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext extracts the owner id stored by WithOwner.
func OwnerFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ownerKey{}).(string)
	return v, ok && v != ""
}

// ContextIdentity implements gateway.Identity over the request context.
type ContextIdentity struct{}

// CurrentOwnerID resolves the owner from the context, reporting false when
// the request is unauthenticated.
func (ContextIdentity) CurrentOwnerID(ctx context.Context) (string, bool) {
	return OwnerFromContext(ctx)
}
