package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"student-feedback-backend/internal/auth"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// JWTAuth gates protected routes: extract the bearer credential, verify it,
// and stash the user identity in the request context. The first failing
// step short-circuits to 401 with a failure-specific message.
func JWTAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, err)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the verified user id, or "" outside a protected route.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func GetUsername(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}
