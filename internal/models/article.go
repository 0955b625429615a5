package models

import "time"

// Article represents a markdown news article served by the remote article
// service. The German field and route names ("artikel") follow that service's
// wire format.
type Article struct {
	ID           int            `json:"id"`
	MarkdownText string         `json:"markdownText"`
	UserID       int            `json:"userId"`
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	User         *ArticleAuthor `json:"user,omitempty"`
}

// ArticleAuthor identifies the author embedded in an article response
type ArticleAuthor struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateArticleRequest is the payload for creating an article
type CreateArticleRequest struct {
	MarkdownText string `json:"markdownText"`
	UserID       int    `json:"userId"`
}

// UpdateArticleRequest is a partial update; nil fields are untouched
type UpdateArticleRequest struct {
	MarkdownText *string `json:"markdownText,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}
