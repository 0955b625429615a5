package models

import "errors"

// Common errors used throughout the application
var (
	ErrUnauthorized          = errors.New("unauthorized access")
	ErrOrderNotFound         = errors.New("order not found")
	ErrArticleNotFound       = errors.New("article not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrTicketNotFound        = errors.New("ticket category not found")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrCheckoutInFlight      = errors.New("checkout already in progress")
	ErrServiceUnavailable    = errors.New("remote service unavailable")
	ErrInvalidInput          = errors.New("invalid input")
)

// ValidationError carries per-field validation messages for a rejected form
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
