package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

// ArticleHandler proxies the zoo's animal articles
type ArticleHandler struct {
	articles services.ArticleAPI
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles services.ArticleAPI) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List returns published articles. Inactive ones are only visible to
// signed-in authors.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	visible := make([]*models.Article, 0, len(articles))
	signedIn := middleware.GetTokenFromContext(r.Context()) != ""
	for _, a := range articles {
		if a.IsActive || signedIn {
			visible = append(visible, a)
		}
	}

	writeJSON(w, http.StatusOK, visible)
}

// GetByID returns a single article
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// Create publishes a new article
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	var req models.CreateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articles.Create(r.Context(), token, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

// Update edits an article
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	var req models.UpdateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.articles.Update(r.Context(), token, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// Delete removes an article
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "articleID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.articles.Delete(r.Context(), token, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
