package store

import (
	"sync"

	"github.com/Dulanji-Amanda/SweetZone/models"
	"github.com/google/uuid"
)

// AddPayload describes an item being added to a cart. ProductID is set when
// the add originates from the catalog and zero for free-form adds.
type AddPayload struct {
	ProductID   uint
	Name        string
	Description string
	Price       int64
	Image       string
	Quantity    int
}

// CartStore keeps every shopper's in-progress selection in process memory.
// Carts live for the process lifetime only; a restart empties them.
//
// Each cart has a single logical writer (its shopper), but many shoppers
// share one store, so access is guarded by a mutex.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartLine)}
}

// matches reports whether an existing line and an incoming payload are the
// same selection. Catalog items merge on their stable product ID; free-form
// items fall back to merging on display name.
func matches(line models.CartLine, p AddPayload) bool {
	if p.ProductID != 0 && line.ProductID != 0 {
		return line.ProductID == p.ProductID
	}
	return line.Name == p.Name
}

// Add merges the payload into an existing line or appends a new one.
// Quantity defaults to 1. Add always succeeds.
func (s *CartStore) Add(userID string, p AddPayload) models.CartLine {
	if p.Quantity < 1 {
		p.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if matches(lines[i], p) {
			lines[i].Quantity += p.Quantity
			return lines[i]
		}
	}

	// Lines are addressed by URL path segment, so the ID must stay
	// opaque; display names can hold spaces or slashes.
	line := models.CartLine{
		ID:          uuid.NewString(),
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    p.Quantity,
	}
	s.carts[userID] = append(lines, line)
	return line
}

// Remove deletes the line with the given ID. Removing an absent line is a
// silent no-op.
func (s *CartStore) Remove(userID, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. Requests below 1 are ignored
// and leave the line unchanged. The second return is false when no line
// with that ID exists.
func (s *CartStore) UpdateQuantity(userID, lineID string, quantity int) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			if quantity >= 1 {
				lines[i].Quantity = quantity
			}
			return lines[i], true
		}
	}
	return models.CartLine{}, false
}

// Clear empties the shopper's cart unconditionally.
func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Items returns a copy of the shopper's lines.
func (s *CartStore) Items(userID string) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Subtotal is the sum of price x quantity over current lines, recomputed on
// every call.
func (s *CartStore) Subtotal(userID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64
	for _, line := range s.carts[userID] {
		sum += line.Price * int64(line.Quantity)
	}
	return sum
}

// TotalItems is the sum of quantities over current lines.
func (s *CartStore) TotalItems(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int
	for _, line := range s.carts[userID] {
		total += line.Quantity
	}
	return total
}
