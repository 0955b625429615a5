package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"zoo-visitor-platform/internal/logger"
	"zoo-visitor-platform/internal/models"
)

// CheckoutRequest carries everything a single checkout submission needs
type CheckoutRequest struct {
	// SessionKey identifies the submitting session for double-submit
	// protection.
	SessionKey    string
	Token         string
	UserID        int
	Cart          *models.Cart
	Form          *models.CardForm
	SaveCard      bool
	SavedMethodID int
}

// CheckoutResult reports how a checkout concluded
type CheckoutResult struct {
	Order *models.Order `json:"order"`
	// Fallback is true when the order service was unreachable and the order
	// was journaled locally instead.
	Fallback bool `json:"fallback"`
	// CardSaved is true when the payment details were stored for reuse
	CardSaved bool `json:"cardSaved"`
}

// CheckoutService validates payment details, submits the order, and falls
// back to the local journal when the order service is down
type CheckoutService struct {
	orders   OrderAPI
	methods  PaymentMethodAPI
	journal  *OrderJournal
	log      *zap.Logger
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orders OrderAPI, methods PaymentMethodAPI, journal *OrderJournal) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		methods:  methods,
		journal:  journal,
		log:      logger.WithComponent("checkout"),
		inFlight: make(map[string]bool),
	}
}

// begin marks a session's checkout as in flight, rejecting a second
// submission while the first is still running.
func (s *CheckoutService) begin(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] {
		return models.ErrCheckoutInFlight
	}
	s.inFlight[key] = true
	return nil
}

func (s *CheckoutService) end(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// Submit runs a full checkout: card validation, order submission with
// journal fallback, and optional saving of the card for later reuse. The
// returned result always carries an order when the error is nil, even if
// only the local journal accepted it.
func (s *CheckoutService) Submit(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error) {
	if req.Cart == nil || req.Cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}
	if req.Form == nil {
		return nil, models.ErrInvalidInput
	}
	if fieldErrors := req.Form.Validate(); len(fieldErrors) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrors}
	}

	if req.SessionKey != "" {
		if err := s.begin(req.SessionKey); err != nil {
			return nil, err
		}
		defer s.end(req.SessionKey)
	}

	items := req.Cart.OrderItems()
	orderReq := &models.OrderCreateRequest{
		Items: items,
		Total: models.ComputeOrderTotal(items),
	}

	result := &CheckoutResult{}

	order, err := s.orders.Create(ctx, req.Token, orderReq)
	switch {
	case err == nil:
		result.Order = order
		// The newest order leads the local cache; History drops this copy
		// again once the backend lists the same ID.
		if jerr := s.journal.Prepend(req.UserID, order); jerr != nil {
			s.log.Warn("failed to cache order locally",
				zap.Int64("order_id", order.ID),
				zap.Int("user_id", req.UserID),
				zap.Error(jerr))
		}
	case err == models.ErrUnauthorized:
		return nil, err
	default:
		// Order service unreachable or failing: confirm locally so the
		// purchase is not lost, and reconcile later from the journal.
		s.log.Warn("order service unavailable, journaling order",
			zap.Int("user_id", req.UserID),
			zap.Error(err))
		fallback := models.NewFallbackOrder(req.UserID, items)
		if jerr := s.journal.Prepend(req.UserID, fallback); jerr != nil {
			return nil, fmt.Errorf("order submission failed and journal write failed: %w", jerr)
		}
		s.log.Info("order journaled locally",
			zap.Int64("order_id", fallback.ID),
			zap.Float64("total_chf", fallback.TotalInCurrency()))
		result.Order = fallback
		result.Fallback = true
	}

	// Saving the card is best-effort: a failure here must not undo a
	// completed order. Only freshly-entered cards are saved, never a
	// prefilled one that already exists.
	if req.SaveCard && req.SavedMethodID == 0 && req.Token != "" {
		summary := req.Form.Summary()
		if _, err := s.methods.Create(ctx, req.Token, &summary); err != nil {
			s.log.Warn("failed to save payment method after checkout",
				zap.Int("user_id", req.UserID),
				zap.Error(err))
		} else {
			result.CardSaved = true
		}
	}

	return result, nil
}

// PrefillFromSaved loads a saved payment method into a checkout form. The
// card number stays blank: only the last four digits are stored, so the
// holder re-enters the number and CVV.
func (s *CheckoutService) PrefillFromSaved(ctx context.Context, token string, methodID int) (models.CardForm, error) {
	methods, err := s.methods.List(ctx, token)
	if err != nil {
		return models.CardForm{}, err
	}

	for _, m := range methods {
		if m.ID == methodID {
			return m.PrefillForm(), nil
		}
	}

	return models.CardForm{}, models.ErrPaymentMethodNotFound
}
