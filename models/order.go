package models

import "time"

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"  // Pay when the box arrives
	PaymentCard           PaymentMethod = "card" // Card checkout
)

// Coordinate is a resolved delivery point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderRecord is an immutable snapshot of a cart taken at checkout.
// Items are copied by value; mutating the cart afterwards never touches
// a recorded order.
type OrderRecord struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Items         []CartLine    `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	DeliveryFee   int64         `json:"delivery_fee"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Address       string        `json:"address"`
	Coords        *Coordinate   `json:"coords,omitempty"`
	PlacedAt      time.Time     `json:"placed_at"`
}
