package models

// CartLine is one merged product selection in a shopper's cart.
type CartLine struct {
	ID          string `json:"id"`
	ProductID   uint   `json:"product_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // whole currency units per piece
	Image       string `json:"image,omitempty"`
	Quantity    int    `json:"quantity"`
}
