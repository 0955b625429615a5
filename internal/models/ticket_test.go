package models

import "testing"

func TestTicketCatalog(t *testing.T) {
	catalog := TicketCatalog()
	if len(catalog) != 3 {
		t.Fatalf("TicketCatalog() = %d categories, want 3", len(catalog))
	}

	prices := map[TicketID]int{
		TicketAdult: 3200,
		TicketYouth: 2600,
		TicketChild: 1700,
	}
	for _, tt := range catalog {
		if want := prices[tt.ID]; tt.Price != want {
			t.Errorf("TicketCatalog() %s price = %d, want %d", tt.ID, tt.Price, want)
		}
	}

	// The returned slice is a copy; mutating it must not poison the catalog
	catalog[0].Price = 1
	fresh, err := TicketTypeByID(TicketAdult)
	if err != nil {
		t.Fatalf("TicketTypeByID() error = %v", err)
	}
	if fresh.Price != 3200 {
		t.Errorf("catalog mutated through returned slice: price = %d", fresh.Price)
	}
}

func TestTicketTypeByID(t *testing.T) {
	ticket, err := TicketTypeByID(TicketYouth)
	if err != nil {
		t.Fatalf("TicketTypeByID() error = %v", err)
	}
	if ticket.Price != 2600 {
		t.Errorf("TicketTypeByID() price = %d, want 2600", ticket.Price)
	}
	if got := ticket.PriceInCurrency(); got != 26.0 {
		t.Errorf("TicketType.PriceInCurrency() = %v, want 26.0", got)
	}

	if _, err := TicketTypeByID(TicketID("senior")); err != ErrTicketNotFound {
		t.Errorf("TicketTypeByID(senior) error = %v, want ErrTicketNotFound", err)
	}
}
