package models

import (
	"testing"
	"time"
)

func TestOrderCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OrderCreateRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid order",
			req: OrderCreateRequest{
				Items: []OrderItem{{Title: "Adult", Price: 3200, Qty: 2}},
				Total: 6400,
			},
			wantErr: false,
		},
		{
			name:    "empty items",
			req:     OrderCreateRequest{Total: 0},
			wantErr: true,
			errMsg:  "order must contain at least one item",
		},
		{
			name: "missing title",
			req: OrderCreateRequest{
				Items: []OrderItem{{Price: 3200, Qty: 1}},
				Total: 3200,
			},
			wantErr: true,
			errMsg:  "order item title is required",
		},
		{
			name: "zero quantity",
			req: OrderCreateRequest{
				Items: []OrderItem{{Title: "Adult", Price: 3200, Qty: 0}},
				Total: 0,
			},
			wantErr: true,
			errMsg:  "order item quantity must be at least 1",
		},
		{
			name: "stale total rejected",
			req: OrderCreateRequest{
				Items: []OrderItem{{Title: "Adult", Price: 3200, Qty: 2}},
				Total: 3200,
			},
			wantErr: true,
			errMsg:  "order total does not match item sum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("OrderCreateRequest.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("OrderCreateRequest.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestComputeOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Title: "Adult", Price: 3200, Qty: 2},
		{Title: "Child", Price: 1700, Qty: 3},
	}
	if got := ComputeOrderTotal(items); got != 11500 {
		t.Errorf("ComputeOrderTotal() = %d, want 11500", got)
	}
	if got := ComputeOrderTotal(nil); got != 0 {
		t.Errorf("ComputeOrderTotal(nil) = %d, want 0", got)
	}
}

func TestNewFallbackOrder(t *testing.T) {
	items := []OrderItem{{Title: "Adult", Price: 3200, Qty: 2}}

	before := time.Now()
	order := NewFallbackOrder(7, items)
	after := time.Now()

	if order.UserID != 7 {
		t.Errorf("NewFallbackOrder() userID = %d, want 7", order.UserID)
	}
	if order.Total != 6400 {
		t.Errorf("NewFallbackOrder() total = %d, want 6400", order.Total)
	}
	if !order.Fallback {
		t.Errorf("NewFallbackOrder() fallback = false, want true")
	}
	if order.CreatedAt.Before(before) || order.CreatedAt.After(after) {
		t.Errorf("NewFallbackOrder() createdAt = %v, want submission time", order.CreatedAt)
	}
	if order.ID < before.UnixMilli() || order.ID > after.UnixMilli() {
		t.Errorf("NewFallbackOrder() id = %d, want timestamp-based", order.ID)
	}

	// Unknown user is recorded as zero
	guest := NewFallbackOrder(0, items)
	if guest.UserID != 0 {
		t.Errorf("NewFallbackOrder() guest userID = %d, want 0", guest.UserID)
	}
}

func TestOrder_TotalInCurrency(t *testing.T) {
	order := Order{Total: 6400}
	if got := order.TotalInCurrency(); got != 64.0 {
		t.Errorf("Order.TotalInCurrency() = %v, want 64.0", got)
	}
}
