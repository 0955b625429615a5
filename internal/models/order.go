package models

import (
	"errors"
	"time"
)

// Order represents a completed ticket purchase. The canonical copy lives in
// the remote order service; fallback orders are synthesized locally when that
// service cannot be reached.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int         `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     int         `json:"total"` // in cents
	CreatedAt time.Time   `json:"createdAt"`
	Fallback  bool        `json:"fallback,omitempty"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	Title string `json:"title"`
	Price int    `json:"price"` // unit price in cents
	Qty   int    `json:"qty"`
}

// OrderCreateRequest is the payload submitted to the remote order service
type OrderCreateRequest struct {
	Items []OrderItem `json:"items"`
	Total int         `json:"total"`
}

// Validate validates an order submission
func (req *OrderCreateRequest) Validate() error {
	if len(req.Items) == 0 {
		return errors.New("order must contain at least one item")
	}

	for _, item := range req.Items {
		if item.Title == "" {
			return errors.New("order item title is required")
		}
		if item.Qty < 1 {
			return errors.New("order item quantity must be at least 1")
		}
		if item.Price < 0 {
			return errors.New("order item price cannot be negative")
		}
	}

	if req.Total != ComputeOrderTotal(req.Items) {
		return errors.New("order total does not match item sum")
	}

	return nil
}

// ComputeOrderTotal sums unit price times quantity over all items
func ComputeOrderTotal(items []OrderItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Qty
	}
	return total
}

// NewFallbackOrder synthesizes a local order record for a submission the
// remote order service did not accept. The id is timestamp-based so fallback
// orders remain distinguishable from server-assigned ids; an unknown user is
// recorded as zero.
func NewFallbackOrder(userID int, items []OrderItem) *Order {
	now := time.Now()
	return &Order{
		ID:        now.UnixMilli(),
		UserID:    userID,
		Items:     items,
		Total:     ComputeOrderTotal(items),
		CreatedAt: now,
		Fallback:  true,
	}
}

// TotalInCurrency returns the order total in the main currency as a float
func (o *Order) TotalInCurrency() float64 {
	return float64(o.Total) / 100.0
}
