package handlers

import (
	"net/http"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

// OrderHandler serves the visitor's purchase history
type OrderHandler struct {
	history services.OrderHistoryAPI
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(history services.OrderHistoryAPI) *OrderHandler {
	return &OrderHandler{history: history}
}

// ListMyOrders returns the visitor's orders, merged with any locally
// journaled ones that have not been reconciled yet.
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	userID := 0
	if user := middleware.GetUserFromContext(r.Context()); user != nil {
		userID = user.ID
	}

	orders, err := h.history.History(r.Context(), token, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if orders == nil {
		orders = []*models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
