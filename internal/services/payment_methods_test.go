package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-visitor-platform/internal/models"
)

func TestPaymentMethodClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment-methods/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.PaymentMethod{
			{ID: 1, CardType: "visa", Last4: "1111"},
		})
	}))
	defer server.Close()

	client := NewPaymentMethodClient(server.URL, 5*time.Second)
	methods, err := client.List(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, "1111", methods[0].Last4)
}

func TestPaymentMethodClientListUsesUserScopedRoute(t *testing.T) {
	// The backend only serves the list on the user-scoped route; the bare
	// collection path is write-only.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/payment-methods/me" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]models.PaymentMethod{{ID: 3, Last4: "4444"}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewPaymentMethodClient(server.URL, 5*time.Second)
	methods, err := client.List(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, 3, methods[0].ID)
}

func TestPaymentMethodClientUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewPaymentMethodClient(server.URL, 5*time.Second)

	_, err := client.List(context.Background(), "expired")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	err = client.Delete(context.Background(), "expired", 1)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestPaymentMethodClientUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/payment-methods/3", r.URL.Path)

		var req models.UpdatePaymentMethodRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.City)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PaymentMethod{ID: 3, City: *req.City})
	}))
	defer server.Close()

	city := "Bern"
	client := NewPaymentMethodClient(server.URL, 5*time.Second)
	method, err := client.Update(context.Background(), "tok", 3, &models.UpdatePaymentMethodRequest{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Bern", method.City)
}

func TestPaymentMethodClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewPaymentMethodClient(server.URL, 5*time.Second)
	err := client.Delete(context.Background(), "tok", 99)

	assert.ErrorIs(t, err, models.ErrPaymentMethodNotFound)
}
