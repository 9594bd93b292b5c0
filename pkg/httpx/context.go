package httpx

import "context"

// Identity is the authenticated caller derived from a verified session
// token. It lives only in the request context and is discarded with it.
type Identity struct {
	UserID   string
	Username string
}

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

func contextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the authenticated identity injected by
// AuthnMiddleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok
}
