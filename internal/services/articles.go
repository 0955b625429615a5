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

// ArticleClient talks to the remote article service
type ArticleClient struct {
	baseURL string
	client  *http.Client
}

// NewArticleClient creates a new article service client
func NewArticleClient(baseURL string, timeout time.Duration) *ArticleClient {
	return &ArticleClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *ArticleClient) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal article payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create article request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send article request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read article response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrArticleNotFound
	}
	if err := checkStatus(resp.StatusCode, bodyBytes); err != nil {
		return nil, err
	}

	return bodyBytes, nil
}

// List retrieves all published articles
func (c *ArticleClient) List(ctx context.Context) ([]*models.Article, error) {
	bodyBytes, err := c.do(ctx, http.MethodGet, "/artikel", "", nil)
	if err != nil {
		return nil, err
	}

	var articles []*models.Article
	if err := json.Unmarshal(bodyBytes, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	return articles, nil
}

// GetByID retrieves a single article
func (c *ArticleClient) GetByID(ctx context.Context, id int) (*models.Article, error) {
	bodyBytes, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/artikel/%d", id), "", nil)
	if err != nil {
		return nil, err
	}

	var article models.Article
	if err := json.Unmarshal(bodyBytes, &article); err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}

	return &article, nil
}

// Create publishes a new article on behalf of the authenticated user
func (c *ArticleClient) Create(ctx context.Context, token string, req *models.CreateArticleRequest) (*models.Article, error) {
	bodyBytes, err := c.do(ctx, http.MethodPost, "/artikel", token, req)
	if err != nil {
		return nil, err
	}

	var article models.Article
	if err := json.Unmarshal(bodyBytes, &article); err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}

	return &article, nil
}

// Update modifies an existing article
func (c *ArticleClient) Update(ctx context.Context, token string, id int, req *models.UpdateArticleRequest) (*models.Article, error) {
	bodyBytes, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/artikel/%d", id), token, req)
	if err != nil {
		return nil, err
	}

	var article models.Article
	if err := json.Unmarshal(bodyBytes, &article); err != nil {
		return nil, fmt.Errorf("failed to decode article: %w", err)
	}

	return &article, nil
}

// Delete removes an article
func (c *ArticleClient) Delete(ctx context.Context, token string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/artikel/%d", id), token, nil)
	return err
}
