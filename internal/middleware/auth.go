package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"zoo-visitor-platform/internal/models"
)

type contextKey string

const (
	UserContextKey  contextKey = "user"
	TokenContextKey contextKey = "token"
)

// Session value keys
const (
	SessionName     = "session"
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)

// AuthMiddleware loads the signed-in visitor from the session
type AuthMiddleware struct {
	store sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{store: store}
}

// LoadUser loads the bearer token and user record from the session and adds
// them to the request context. Requests without a session continue as guest.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// Continue without user if session is invalid
			next.ServeHTTP(w, r)
			return
		}

		token, ok := session.Values[SessionTokenKey].(string)
		if !ok || token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), TokenContextKey, token)

		if userJSON, ok := session.Values[SessionUserKey].(string); ok && userJSON != "" {
			var user models.User
			if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
				ctx = context.WithValue(ctx, UserContextKey, &user)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without a session token. The error code is
// the one clients key their login redirect on.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetTokenFromContext(r.Context()) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "authentication required",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetTokenFromContext retrieves the bearer token from request context
func GetTokenFromContext(ctx context.Context) string {
	token, ok := ctx.Value(TokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}

// SetUserContext sets the user in the context (for testing)
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// SetTokenContext sets the bearer token in the context (for testing)
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenContextKey, token)
}
