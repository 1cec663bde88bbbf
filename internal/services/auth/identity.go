package auth

import (
	"context"

	"github.com/dicegame/dicegame/internal/model"
)

// AuthorityPlayer is the single authority every authenticated player holds
const AuthorityPlayer = "PLAYER"

// RequestIdentity is the ephemeral, request-scoped binding of an
// authenticated player and their granted authorities. It is created by the
// identity filter, threaded through the request context, and discarded when
// the request ends.
type RequestIdentity struct {
	Player      *model.Player
	Authorities []string
}

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity returns a context carrying the given identity
func WithIdentity(ctx context.Context, identity *RequestIdentity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFrom returns the identity bound to the context, if any
func IdentityFrom(ctx context.Context) *RequestIdentity {
	identity, _ := ctx.Value(identityContextKey).(*RequestIdentity)
	return identity
}

// MustIdentityFrom returns the bound identity or panics. Only call from
// handlers behind the RequireAuth guard.
func MustIdentityFrom(ctx context.Context) *RequestIdentity {
	identity := IdentityFrom(ctx)
	if identity == nil {
		panic("no identity in context - auth middleware not applied?")
	}
	return identity
}
