package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zoo-visitor-platform/internal/models"
)

// AuthClient talks to the remote authentication service
type AuthClient struct {
	baseURL string
	client  *http.Client
}

// NewAuthClient creates a new auth service client
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a bearer token. The auth service has
// shipped the token under different keys over time, so all known variants
// are accepted.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, models.ErrInvalidInput
	}

	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send login request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return nil, models.ErrUnauthorized
	}
	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	var raw struct {
		AccessToken      string       `json:"access_token"`
		Token            string       `json:"token"`
		AccessTokenCamel string       `json:"accessToken"`
		User             *models.User `json:"user"`
	}
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	token := raw.AccessToken
	if token == "" {
		token = raw.Token
	}
	if token == "" {
		token = raw.AccessTokenCamel
	}
	if token == "" {
		return nil, fmt.Errorf("login response contained no token")
	}

	return &LoginResult{Token: token, User: raw.User}, nil
}
