package middleware

import (
	"context"
	"net/http"
	"strings"

	"payrolld/internal/auth"
	"payrolld/internal/transport/http/api"
)

type ctxKey string

const ctxKeyClerk ctxKey = "clerk"

// RequireAuth rejects requests without a valid Bearer token. The login
// endpoint is mounted outside this middleware.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyClerk, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClerk(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(ctxKeyClerk).(string)
	return username, ok
}
