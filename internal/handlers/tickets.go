package handlers

import (
	"net/http"

	"zoo-visitor-platform/internal/models"
)

// TicketHandler serves the ticket catalog
type TicketHandler struct{}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler() *TicketHandler {
	return &TicketHandler{}
}

// ticketResponse is one catalog entry with the cent price and its display
// value in francs
type ticketResponse struct {
	models.TicketType
	PriceChf float64 `json:"priceChf"`
}

// ListTicketTypes returns the fixed ticket categories with their prices
func (h *TicketHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	catalog := models.TicketCatalog()
	resp := make([]ticketResponse, 0, len(catalog))
	for _, tt := range catalog {
		resp = append(resp, ticketResponse{
			TicketType: tt,
			PriceChf:   tt.PriceInCurrency(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
