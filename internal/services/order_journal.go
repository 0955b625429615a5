package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"zoo-visitor-platform/internal/models"
)

// OrderJournal keeps locally-confirmed orders on disk, scoped per user, so a
// checkout still completes when the order service is unreachable. Journaled
// orders are merged back into the history view until the backend catches up.
type OrderJournal struct {
	basePath string
	mu       sync.Mutex
}

// NewOrderJournal creates a new file-backed order journal
func NewOrderJournal(basePath string) *OrderJournal {
	// Ensure base path exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		fmt.Printf("Warning: Failed to create journal directory %s: %v\n", basePath, err)
	}

	return &OrderJournal{basePath: basePath}
}

// fileFor maps a user ID to its journal file. Unauthenticated sessions share
// the guest journal.
func (j *OrderJournal) fileFor(userID int) string {
	scope := "guest"
	if userID > 0 {
		scope = fmt.Sprintf("%d", userID)
	}
	return filepath.Join(j.basePath, fmt.Sprintf("orders.%s.json", scope))
}

// Prepend stores an order at the front of the user's journal so the most
// recent order lists first.
func (j *OrderJournal) Prepend(userID int, order *models.Order) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	orders := j.readLocked(userID)
	orders = append([]*models.Order{order}, orders...)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	path := j.fileFor(userID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write journal %s: %w", path, err)
	}

	return nil
}

// List returns the journaled orders for a user, most recent first
func (j *OrderJournal) List(userID int) []*models.Order {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.readLocked(userID)
}

// readLocked loads and parses a journal file. A missing or corrupt file
// yields an empty journal rather than an error.
func (j *OrderJournal) readLocked(userID int) []*models.Order {
	data, err := os.ReadFile(j.fileFor(userID))
	if err != nil {
		return nil
	}

	var orders []*models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil
	}

	return orders
}
