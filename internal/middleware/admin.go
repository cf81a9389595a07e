package middleware

import (
	"context"
	"net/http"

	"lexsite-backend/internal/transport"
)

type adminIDKey struct{}

// VerifyAccess checks an access token and returns the admin id it carries.
type VerifyAccess func(token string) (string, error)

// RequireAdmin gates mutating routes behind the accessToken cookie. The two
// failure messages are deliberately generic; they never distinguish a
// malformed token from an expired or forged one.
func RequireAdmin(verify VerifyAccess) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("accessToken")
			if err != nil || cookie.Value == "" {
				transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}

			adminID, err := verify(cookie.Value)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey{}, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminIDFromContext(ctx context.Context) string {
	if v := ctx.Value(adminIDKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
