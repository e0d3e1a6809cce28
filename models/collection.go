package models

// Collection is a curated seasonal box shown on the home and collections
// screens.
type Collection struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `gorm:"unique;not null" json:"title"`
	Description  string `json:"description"`
	TastingNotes string `json:"tasting_notes"`
	Tag          string `json:"tag"` // e.g. "Limited", "Bestseller", "Chef's pick"
	Size         string `json:"size"`
	Price        int64  `gorm:"not null" json:"price"`
	Image        string `json:"image"`
}

// Story is a feed entry for tasting experiences, workshops and memberships.
type Story struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Detail   string `json:"detail"`
	Schedule string `json:"time"`
	Badge    string `json:"badge"`
}
