package middleware

import (
	"net/http"
	"strings"

	"github.com/dicegame/dicegame/internal/api/apierr"
	"github.com/dicegame/dicegame/internal/services/auth"
	"github.com/dicegame/dicegame/internal/services/token"
	"github.com/dicegame/dicegame/internal/storage"
)

const bearerScheme = "Bearer "

// Identity creates the per-request identity filter. It runs on every request:
// a verified bearer token binds a RequestIdentity into the request context; a
// missing or invalid token leaves the request unauthenticated but still
// forwards it. Route guards decide whether unauthenticated access is allowed.
func Identity(codec *token.Codec, store storage.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractBearer(r)
			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := codec.Verify(tok)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			player, err := store.GetPlayer(r.Context(), subject)
			if err != nil {
				// A valid token whose subject no longer resolves is fatal for
				// this request; proceeding silently unauthenticated would mask
				// a store inconsistency
				apierr.WriteError(w, apierr.NewInternalError())
				return
			}

			identity := &auth.RequestIdentity{
				Player:      player,
				Authorities: []string{auth.AuthorityPlayer},
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAuth rejects requests that reached this point without an identity
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.IdentityFrom(r.Context()) == nil {
			apierr.WriteError(w, apierr.NewUnauthorizedError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractBearer returns the token from the Authorization header, or the empty
// string when the header is absent or uses another scheme
func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerScheme) {
		return ""
	}
	return strings.TrimPrefix(header, bearerScheme)
}
