// goudace | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type SessionVerifier interface {
	Verify(token string) (string, error)
	CookieName() string
}

type IdentityLoader interface {
	IdentityByID(ctx context.Context, id string) (*auth.Identity, error)
}

// Identity resolves the requester once per request from the session cookie.
// A missing, malformed or unverifiable token means anonymous, never a request
// failure: operations that need an identity enforce it through the policy
// layer instead.
func Identity(
	sessions SessionVerifier,
	users IdentityLoader,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessions.CookieName())
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.Verify(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := users.IdentityByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.NewContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests before the handler runs. The policy
// layer repeats the check; this is the transport-level fast path.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.FromContext(r.Context()) == nil {
			core.JSONError(
				w,
				core.UnauthorizedError("you must be signed in to do that"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := auth.FromContext(r.Context())

		if identity == nil {
			core.JSONError(
				w,
				core.UnauthorizedError("you must be signed in to do that"),
			)
			return
		}

		if !identity.IsAdmin() {
			core.JSONError(
				w,
				core.ForbiddenError("you have to be an admin to do that"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}
