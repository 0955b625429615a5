package models

import "encoding/json"

// Cart represents a visitor's shopping cart
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem represents one ticket category line in the cart
type CartItem struct {
	ID    TicketID `json:"id"`
	Title string   `json:"title"`
	Price int      `json:"price"` // unit price in cents
	Qty   int      `json:"qty"`
}

// AddItem adds tickets of the given category to the cart, merging with an
// existing line for the same category. Non-positive quantities are ignored.
func (c *Cart) AddItem(id TicketID, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	ticket, err := TicketTypeByID(id)
	if err != nil {
		return err
	}

	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Qty += quantity
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ID:    ticket.ID,
		Title: ticket.Title,
		Price: ticket.Price,
		Qty:   quantity,
	})
	return nil
}

// UpdateQuantity adjusts a line's quantity by delta, clamped to a minimum of
// one. Removing a line entirely goes through RemoveItem.
func (c *Cart) UpdateQuantity(id TicketID, delta int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			qty := c.Items[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			c.Items[i].Qty = qty
			return
		}
	}
}

// RemoveItem deletes a line unconditionally
func (c *Cart) RemoveItem(id TicketID) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty returns true if the cart holds no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalCount returns the number of tickets across all lines
func (c *Cart) TotalCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Qty
	}
	return count
}

// TotalPrice returns the cart total in cents, recomputed from the lines
func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Qty
	}
	return total
}

// OrderItems converts the cart lines into order line items
func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderItem{
			Title: item.Title,
			Price: item.Price,
			Qty:   item.Qty,
		})
	}
	return items
}

// Serialize encodes the cart for session storage
func (c *Cart) Serialize() string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}

// ParseCart decodes a stored cart. Corrupt or unexpected data is treated as
// an empty cart; lines with unknown categories or broken quantities are
// dropped rather than failing the whole parse.
func ParseCart(raw string) *Cart {
	if raw == "" {
		return &Cart{}
	}

	var stored Cart
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return &Cart{}
	}

	cart := &Cart{}
	for _, item := range stored.Items {
		ticket, err := TicketTypeByID(item.ID)
		if err != nil {
			continue
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		cart.Items = append(cart.Items, CartItem{
			ID:    ticket.ID,
			Title: ticket.Title,
			Price: ticket.Price,
			Qty:   qty,
		})
	}
	return cart
}
