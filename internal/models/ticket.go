package models

// TicketID identifies a ticket category in the zoo's catalog
type TicketID string

const (
	TicketAdult TicketID = "adult"
	TicketYouth TicketID = "youth"
	TicketChild TicketID = "child"
)

// TicketType represents a purchasable ticket category
type TicketType struct {
	ID    TicketID `json:"id"`
	Title string   `json:"title"`
	Price int      `json:"price"` // in cents
	Image string   `json:"image"`
}

// ticketCatalog is the fixed set of day tickets the zoo sells.
// Prices are authoritative here; cart adds never trust a client-sent price.
var ticketCatalog = []TicketType{
	{ID: TicketAdult, Title: "Adult", Price: 3200, Image: "/Elephant.png"},
	{ID: TicketYouth, Title: "Youth", Price: 2600, Image: "/Fuchs.png"},
	{ID: TicketChild, Title: "Child", Price: 1700, Image: "/ElephantSquare.png"},
}

// TicketCatalog returns all ticket categories on sale
func TicketCatalog() []TicketType {
	catalog := make([]TicketType, len(ticketCatalog))
	copy(catalog, ticketCatalog)
	return catalog
}

// TicketTypeByID looks up a ticket category by its ID
func TicketTypeByID(id TicketID) (*TicketType, error) {
	for _, tt := range ticketCatalog {
		if tt.ID == id {
			ticket := tt
			return &ticket, nil
		}
	}
	return nil, ErrTicketNotFound
}

// PriceInCurrency returns the ticket price in the main currency as a float
func (t *TicketType) PriceInCurrency() float64 {
	return float64(t.Price) / 100.0
}
