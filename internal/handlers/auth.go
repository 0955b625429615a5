package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

// AuthHandler manages login, logout, and the current-user endpoint
type AuthHandler struct {
	auth  services.AuthAPI
	store sessions.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth services.AuthAPI, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		store: store,
	}
}

// Login exchanges credentials for a session. The session cart is left
// untouched so tickets picked before logging in survive the redirect.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		if errors.Is(err, models.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}
		writeServiceError(w, err)
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	session.Values[middleware.SessionTokenKey] = result.Token
	if result.User != nil {
		userJSON, _ := json.Marshal(result.User)
		session.Values[middleware.SessionUserKey] = string(userJSON)
	}
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": result.User,
	})
}

// Logout drops the visitor's credentials but keeps the cart
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	delete(session.Values, middleware.SessionTokenKey)
	delete(session.Values, middleware.SessionUserKey)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// Me returns the signed-in user, or 401 for guests
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if middleware.GetTokenFromContext(r.Context()) == "" {
		writeUnauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": middleware.GetUserFromContext(r.Context()),
	})
}
