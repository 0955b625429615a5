package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
	"zoo-visitor-platform/internal/services"
)

// CheckoutHandler runs the checkout flow against the session cart
type CheckoutHandler struct {
	checkout services.CheckoutAPI
	store    sessions.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout services.CheckoutAPI, store sessions.Store) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		store:    store,
	}
}

// checkoutPayload is the request body for a checkout submission
type checkoutPayload struct {
	Card          models.CardForm `json:"card"`
	SaveCard      bool            `json:"saveCard"`
	SavedMethodID int             `json:"savedMethodId"`
}

// ProcessCheckout validates the payment form and submits the order built
// from the session cart. The cart survives every failure and is only
// cleared once an order was accepted, remotely or via the local journal.
func (h *CheckoutHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	var payload checkoutPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cartJSON, _ := session.Values["cart"].(string)
	cart := models.ParseCart(cartJSON)

	userID := 0
	if user := middleware.GetUserFromContext(r.Context()); user != nil {
		userID = user.ID
	}

	result, err := h.checkout.Submit(r.Context(), &services.CheckoutRequest{
		SessionKey:    token,
		Token:         token,
		UserID:        userID,
		Cart:          cart,
		Form:          &payload.Card,
		SaveCard:      payload.SaveCard,
		SavedMethodID: payload.SavedMethodID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cart.Clear()
	session.Values["cart"] = cart.Serialize()
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// NewCardForm returns the blank form the checkout renders when the visitor
// switches the payment selector back to "new card".
func (h *CheckoutHandler) NewCardForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.NewCardForm())
}

// ValidateCardField re-validates a single form field as the visitor edits
// it, for inline feedback before submission.
func (h *CheckoutHandler) ValidateCardField(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Field string          `json:"field"`
		Card  models.CardForm `json:"card"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Field == "" {
		writeError(w, http.StatusBadRequest, "field name is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"field":  payload.Field,
		"errors": payload.Card.ValidateField(payload.Field),
	})
}

// PrefillFromSaved returns a checkout form populated from a saved payment
// method, with the card number and CVV left blank for re-entry.
func (h *CheckoutHandler) PrefillFromSaved(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	if token == "" {
		writeUnauthorized(w)
		return
	}

	methodID, err := strconv.Atoi(chi.URLParam(r, "methodID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment method id")
		return
	}

	form, err := h.checkout.PrefillFromSaved(r.Context(), token, methodID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, form)
}
