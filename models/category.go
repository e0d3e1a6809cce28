package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string    `gorm:"unique;not null" json:"title"`
	Story    string    `json:"story"`
	Hue      string    `json:"hue"` // accent colour used by the app's category cards
	Products []Product `gorm:"many2many:product_categories" json:"products,omitempty"`
}
