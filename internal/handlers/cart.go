package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"zoo-visitor-platform/internal/middleware"
	"zoo-visitor-platform/internal/models"
)

// CartHandler manages the session-scoped shopping cart
type CartHandler struct {
	store sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store sessions.Store) *CartHandler {
	return &CartHandler{store: store}
}

// cartResponse is the cart view the frontend renders
type cartResponse struct {
	Items      []models.CartItem `json:"items"`
	TotalCount int               `json:"totalCount"`
	TotalPrice int               `json:"totalPrice"`
}

func newCartResponse(cart *models.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalCount: cart.TotalCount(),
		TotalPrice: cart.TotalPrice(),
	}
}

// ViewCart returns the current cart contents
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := h.getCartFromSession(session)
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

// AddToCart adds tickets of one category to the cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TicketID models.TicketID `json:"ticketId"`
		Quantity int             `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := h.getCartFromSession(session)
	if err := cart.AddItem(req.TicketID, req.Quantity); err != nil {
		if errors.Is(err, models.ErrTicketNotFound) {
			writeError(w, http.StatusNotFound, "unknown ticket category")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.saveCartToSession(session, cart, r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

// UpdateCartItem adjusts the quantity of a cart line by a signed delta. The
// quantity never drops below one; removal is an explicit delete.
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticketID := models.TicketID(chi.URLParam(r, "ticketID"))

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := h.getCartFromSession(session)
	cart.UpdateQuantity(ticketID, req.Delta)

	if err := h.saveCartToSession(session, cart, r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

// RemoveCartItem removes a ticket category from the cart entirely
func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ticketID := models.TicketID(chi.URLParam(r, "ticketID"))

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := h.getCartFromSession(session)
	cart.RemoveItem(ticketID)

	if err := h.saveCartToSession(session, cart, r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := h.getCartFromSession(session)
	cart.Clear()

	if err := h.saveCartToSession(session, cart, r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *CartHandler) getCartFromSession(session *sessions.Session) *models.Cart {
	cartData, ok := session.Values["cart"]
	if !ok {
		return &models.Cart{}
	}

	cartJSON, ok := cartData.(string)
	if !ok {
		return &models.Cart{}
	}

	return models.ParseCart(cartJSON)
}

func (h *CartHandler) saveCartToSession(session *sessions.Session, cart *models.Cart, r *http.Request, w http.ResponseWriter) error {
	session.Values["cart"] = cart.Serialize()
	return session.Save(r, w)
}
