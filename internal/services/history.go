package services

import (
	"context"

	"go.uber.org/zap"

	"zoo-visitor-platform/internal/logger"
	"zoo-visitor-platform/internal/models"
)

// OrderHistoryService merges the remote order list with locally journaled
// fallback orders so the history survives order service outages
type OrderHistoryService struct {
	orders  OrderAPI
	journal *OrderJournal
	log     *zap.Logger
}

// NewOrderHistoryService creates a new order history service
func NewOrderHistoryService(orders OrderAPI, journal *OrderJournal) *OrderHistoryService {
	return &OrderHistoryService{
		orders:  orders,
		journal: journal,
		log:     logger.WithComponent("order-history"),
	}
}

// History returns the user's orders, journaled fallback orders first, then
// the remote list. When the order service is unreachable the journal alone
// is returned so the page still renders.
func (s *OrderHistoryService) History(ctx context.Context, token string, userID int) ([]*models.Order, error) {
	local := s.journal.List(userID)

	remote, err := s.orders.ListMine(ctx, token)
	if err != nil {
		if err == models.ErrUnauthorized {
			return nil, err
		}
		s.log.Warn("order service unavailable, serving journal only",
			zap.Int("user_id", userID),
			zap.Error(err))
		return local, nil
	}

	// Drop journal entries the backend already knows about
	seen := make(map[int64]bool, len(remote))
	for _, o := range remote {
		seen[o.ID] = true
	}

	merged := make([]*models.Order, 0, len(local)+len(remote))
	for _, o := range local {
		if !seen[o.ID] {
			merged = append(merged, o)
		}
	}
	merged = append(merged, remote...)

	return merged, nil
}
