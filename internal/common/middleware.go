package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// UserIDFromContext returns the authenticated user id placed there by the
// auth middleware. ok is false for unauthenticated requests.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

// ContextWithUser is used by middleware and tests to inject an identity.
func ContextWithUser(ctx context.Context, userID uint64, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

func bearerToken(r *http.Request) (string, bool) {
	// Authorization: Bearer <token>
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a valid session token and injects
// the user identity into the request context for handlers downstream.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := ValidToken(token)
		if err != nil {
			WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := ContextWithUser(r.Context(), claims.UserID, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the identity when a valid token is present but lets
// anonymous requests through. Read endpoints use it to personalize responses
// (is_liked, is_following) without requiring a session.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if claims, err := ValidToken(token); err == nil {
				r = r.WithContext(ContextWithUser(r.Context(), claims.UserID, claims.Username))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request with method and path.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Log.WithFields(map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("request")
		next.ServeHTTP(w, r)
	})
}
