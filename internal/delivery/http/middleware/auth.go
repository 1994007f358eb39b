package middleware

import (
	"context"
	"errors"
	"net/http"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/domain"
)

// TokenCookieName is the cookie carrying the identity credential.
const TokenCookieName = "token"

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context with the identity email set. Used by auth middleware.
func SetIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey, email)
}

// IdentityFromContext returns the authenticated identity email from the context, if present.
func IdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	return email, ok
}

// RequireAuth returns a wrapper that verifies the token cookie and sets the
// identity email in the request context. If the cookie is missing or the
// credential is invalid or expired, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookieName)
			if err != nil {
				if errors.Is(err, http.ErrNoCookie) {
					h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing credential")
					return
				}
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid cookie")
				return
			}
			if cookie.Value == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing credential")
				return
			}
			email, err := verifier.Verify(cookie.Value)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired credential")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), email))
			next(w, r)
		}
	}
}
