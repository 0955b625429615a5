package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

// PaymentMethodHandler proxies saved payment method management
type PaymentMethodHandler struct {
	methods services.PaymentMethodAPI
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(methods services.PaymentMethodAPI) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods}
}

// List returns the visitor's saved payment methods
func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	methods, err := h.methods.List(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if methods == nil {
		methods = []*models.PaymentMethod{}
	}
	writeJSON(w, http.StatusOK, methods)
}

// Create saves a new payment method
func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	var req models.CreatePaymentMethodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := h.methods.Create(r.Context(), token, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, method)
}

// Update edits the billing details of a saved payment method
func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "methodID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment method id")
		return
	}

	var req models.UpdatePaymentMethodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := h.methods.Update(r.Context(), token, id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, method)
}

// Delete removes a saved payment method
func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "methodID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment method id")
		return
	}

	if err := h.methods.Delete(r.Context(), token, id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
