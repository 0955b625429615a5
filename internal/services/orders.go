package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"zoo-visitor-platform/internal/models"
)

// OrderClient talks to the remote order service
type OrderClient struct {
	baseURL string
	client  *http.Client
}

// NewOrderClient creates a new order service client
func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Create submits a finalized order with bearer auth and returns the canonical
// order record the service assigned.
func (c *OrderClient) Create(ctx context.Context, token string, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	var order models.Order
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &order, nil
}

// ListMine retrieves the authenticated user's orders
func (c *OrderClient) ListMine(ctx context.Context, token string) ([]*models.Order, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create orders request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send orders request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	var orders []*models.Order
	if err := json.Unmarshal(bodyBytes, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}

	return orders, nil
}

// checkStatus maps a backend response status to the error taxonomy: 401
// surfaces as the distinct unauthorized condition, any other non-2xx as a
// generic service failure.
func checkStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	if statusCode == http.StatusUnauthorized {
		return models.ErrUnauthorized
	}
	return fmt.Errorf("backend error (status %d): %s", statusCode, truncateBody(body))
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
