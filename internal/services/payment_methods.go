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

// PaymentMethodClient talks to the remote payment method service
type PaymentMethodClient struct {
	baseURL string
	client  *http.Client
}

// NewPaymentMethodClient creates a new payment method service client
func NewPaymentMethodClient(baseURL string, timeout time.Duration) *PaymentMethodClient {
	return &PaymentMethodClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *PaymentMethodClient) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payment method payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment method request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send payment method request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment method response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrPaymentMethodNotFound
	}
	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	return bodyBytes, nil
}

// List retrieves the authenticated user's saved payment methods. The list
// route is user-scoped ("/me"); the write routes are not.
func (c *PaymentMethodClient) List(ctx context.Context, token string) ([]*models.PaymentMethod, error) {
	bodyBytes, err := c.do(ctx, http.MethodGet, "/payment-methods/me", token, nil)
	if err != nil {
		return nil, err
	}

	var methods []*models.PaymentMethod
	if err := json.Unmarshal(bodyBytes, &methods); err != nil {
		return nil, fmt.Errorf("failed to decode payment methods: %w", err)
	}

	return methods, nil
}

// Create saves a new payment method for the authenticated user
func (c *PaymentMethodClient) Create(ctx context.Context, token string, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	bodyBytes, err := c.do(ctx, http.MethodPost, "/payment-methods", token, req)
	if err != nil {
		return nil, err
	}

	var method models.PaymentMethod
	if err := json.Unmarshal(bodyBytes, &method); err != nil {
		return nil, fmt.Errorf("failed to decode payment method: %w", err)
	}

	return &method, nil
}

// Update modifies an existing payment method
func (c *PaymentMethodClient) Update(ctx context.Context, token string, id int, req *models.UpdatePaymentMethodRequest) (*models.PaymentMethod, error) {
	bodyBytes, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/payment-methods/%d", id), token, req)
	if err != nil {
		return nil, err
	}

	var method models.PaymentMethod
	if err := json.Unmarshal(bodyBytes, &method); err != nil {
		return nil, fmt.Errorf("failed to decode payment method: %w", err)
	}

	return &method, nil
}

// Delete removes a saved payment method
func (c *PaymentMethodClient) Delete(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/payment-methods/%d", id), token, nil)
	return err
}
