package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-visitor-platform/internal/models"
)

func TestAuthClientLoginTokenVariants(t *testing.T) {
	// The auth service has used different JSON keys for the token across
	// versions; all of them must log the user in.
	tests := []struct {
		name string
		body string
	}{
		{"snake_case", `{"access_token": "tok-1", "user": {"id": 7, "name": "Anna"}}`},
		{"plain", `{"token": "tok-1"}`},
		{"camelCase", `{"accessToken": "tok-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/login", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewAuthClient(server.URL, 5*time.Second)
			result, err := client.Login(context.Background(), "anna@example.com", "secret")

			require.NoError(t, err)
			assert.Equal(t, "tok-1", result.Token)
		})
	}
}

func TestAuthClientLoginIncludesUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "tok-1", "user": {"id": 7, "name": "Anna", "email": "anna@example.com"}}`)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	result, err := client.Login(context.Background(), "anna@example.com", "secret")

	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, 7, result.User.ID)
	assert.Equal(t, "Anna", result.User.Name)
}

func TestAuthClientLoginBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "anna@example.com", "wrong")

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestAuthClientLoginMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"user": {"id": 7}}`)
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, 5*time.Second)
	_, err := client.Login(context.Background(), "anna@example.com", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestAuthClientLoginEmptyCredentials(t *testing.T) {
	client := NewAuthClient("http://unused.invalid", 5*time.Second)

	_, err := client.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = client.Login(context.Background(), "anna@example.com", "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
