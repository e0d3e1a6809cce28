package store

import (
	"sync"
	"time"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/google/uuid"
)

// OrderStore keeps the append-only history of placed orders, newest first.
// Like the cart store it is process-lifetime only.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.OrderRecord
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// generateOrderRef returns a unique order identifier.
// Example: order-20250908130500-<uuid4>
func generateOrderRef() string {
	return "order-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Add deep-copies the given items, stamps a fresh identifier and the current
// time, and prepends the record to the history.
func (s *OrderStore) Add(userID string, items []models.CartLine, subtotal, deliveryFee, total int64, method models.PaymentMethod, address string, coords *models.Coordinate) models.OrderRecord {
	snapshot := make([]models.CartLine, len(items))
	copy(snapshot, items)

	var coordsCopy *models.Coordinate
	if coords != nil {
		c := *coords
		coordsCopy = &c
	}

	record := models.OrderRecord{
		ID:            generateOrderRef(),
		UserID:        userID,
		Items:         snapshot,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         total,
		PaymentMethod: method,
		Address:       address,
		Coords:        coordsCopy,
		PlacedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]models.OrderRecord{record}, s.orders...)
	return record
}

// ListByUser returns the shopper's orders, newest first.
func (s *OrderStore) ListByUser(userID string) []models.OrderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OrderRecord, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// All returns the full history, newest first.
func (s *OrderStore) All() []models.OrderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OrderRecord, len(s.orders))
	copy(out, s.orders)
	return out
}
