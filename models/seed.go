package models

import "gorm.io/gorm"

// SeedCatalog fills an empty database with the launch catalog, curated
// collections and feed stories. It is a no-op once categories exist.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []Category{
		{
			Title: "Chocolate Cookies",
			Story: "Soft interiors, cocoa nib crunch, and fleur de sel crystals baked daily.",
			Hue:   "#2b140a",
			Products: []Product{
				{
					Name:        "Midnight Sea Salt",
					Description: "72% cacao dough, smoked salt, and burnt sugar chips.",
					Price:       18,
					Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=80",
				},
				{
					Name:        "Hazelnut Crumble",
					Description: "Dark chocolate base studded with caramelized hazelnuts.",
					Price:       16,
					Image:       "https://images.unsplash.com/photo-1481391032119-d89fee407e44?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
		{
			Title: "Chocolate Cakes",
			Story: "Mini tortes soaked in cacao cordial and finished with velvet ganache.",
			Hue:   "#4a2414",
			Products: []Product{
				{
					Name:        "Amber Opera",
					Description: "Espresso jaconde, amber caramel, and cocoa mirror glaze.",
					Price:       42,
					Image:       "https://images.unsplash.com/photo-1461009209120-103742b534e2?auto=format&fit=crop&w=800&q=80",
				},
				{
					Name:        "Rosewood Gateau",
					Description: "Light brown sugar sponge layered with rose ganache.",
					Price:       38,
					Image:       "https://images.unsplash.com/photo-1470337458703-46ad1756a187?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
		{
			Title: "Chocolate Bars",
			Story: "Hand-tempered tablets highlighting origin-specific terroir.",
			Hue:   "#3b1d0f",
			Products: []Product{
				{
					Name:        "Andes Dawn",
					Description: "70% Peru cacao with candied orange and cacao nibs.",
					Price:       14,
					Image:       "https://images.unsplash.com/photo-1495147334217-fcb3445babd5?auto=format&fit=crop&w=800&q=80",
				},
				{
					Name:        "Ivory Pistachio",
					Description: "White chocolate with roasted pistachios and rose petal.",
					Price:       16,
					Image:       "https://images.unsplash.com/photo-1470337458703-46ad1756a187?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
		{
			Title: "Chocolate Drinks",
			Story: "Sipping chocolates and chilled tonics extracted in small batches.",
			Hue:   "#1f130c",
			Products: []Product{
				{
					Name:        "Aztec Ember",
					Description: "Spiced dark sipping chocolate with smoked chili oil.",
					Price:       12,
					Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=800&q=80",
				},
				{
					Name:        "Cacao Cold Brew",
					Description: "Nitro-infused cacao tea with Ethiopian coffee concentrate.",
					Price:       10,
					Image:       "https://images.unsplash.com/photo-1521302080372-9a22dd087495?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
		{
			Title: "Chocolate Truffles",
			Story: "Hand-rolled pralines dusted with edible bronze and botanicals.",
			Hue:   "#4e2a1b",
			Products: []Product{
				{
					Name:        "Lavender Honey",
					Description: "Milk chocolate ganache infused with lavender nectar.",
					Price:       24,
					Image:       "https://images.unsplash.com/photo-1481391032119-d89fee407e44?auto=format&fit=crop&w=800&q=80",
				},
				{
					Name:        "Citrus Noir",
					Description: "Dark ganache with candied yuzu and cacao fruit jelly.",
					Price:       26,
					Image:       "https://images.unsplash.com/photo-1511376777868-611b54f68947?auto=format&fit=crop&w=800&q=80",
				},
			},
		},
	}

	collections := []Collection{
		{
			Title:        "Velvet Truffle Studio",
			Description:  "Espresso-infused ganache rolled in vanilla bean cocoa dust.",
			TastingNotes: "Notes of espresso crema, smoked sea salt, and cacao nib crunch",
			Tag:          "Limited",
			Size:         "6-piece atelier box",
			Price:        32,
			Image:        "https://images.unsplash.com/photo-1470337458703-46ad1756a187?auto=format&fit=crop&w=900&q=80",
		},
		{
			Title:        "Amber Caramel Atelier",
			Description:  "Four-layer praline with pecan gianduja and amber caramel.",
			TastingNotes: "Brown butter brittle, toasted pecan, Madagascar vanilla",
			Tag:          "Bestseller",
			Size:         "5-piece slab set",
			Price:        28,
			Image:        "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=900&q=80",
		},
		{
			Title:        "Midnight Noir Flight",
			Description:  "72% cacao bars paired with blackberry balsamic reduction.",
			TastingNotes: "Blackberry jam, cassis, balsamic caramel",
			Tag:          "Chef's pick",
			Size:         "3-bar tasting",
			Price:        36,
			Image:        "https://images.unsplash.com/photo-1495147334217-fcb3445babd5?auto=format&fit=crop&w=900&q=80",
		},
		{
			Title:        "Rose Latte Fudge",
			Description:  "White chocolate fudge rippled with rosewater cremeux.",
			TastingNotes: "Turkish delight, cardamom milk, wildflower honey",
			Tag:          "New",
			Size:         "9-piece tasting tile",
			Price:        30,
			Image:        "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=900&q=80",
		},
		{
			Title:        "Cocoa Nectar Orbit",
			Description:  "Domed bonbons with orange blossom caramel core.",
			TastingNotes: "Citrus oil, buckwheat honey, cacao fruit",
			Tag:          "Seasonal",
			Size:         "8-piece galaxy set",
			Price:        34,
			Image:        "https://images.unsplash.com/photo-1504753793650-d4a2b783c15e?auto=format&fit=crop&w=900&q=80",
		},
		{
			Title:        "Hazelnut Crown Gateau",
			Description:  "Mini cake topped with praline shards and bronze cocoa butter.",
			TastingNotes: "Gianduja, caramelized hazelnut, cacao husk",
			Tag:          "Small batch",
			Size:         "2 mini tortes",
			Price:        42,
			Image:        "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?auto=format&fit=crop&w=900&q=80",
		},
	}

	stories := []Story{
		{
			Title:    "Sip & Savor Lounge",
			Detail:   "Guided pairings with Ethiopian natural-process coffee and cacao tea spritz.",
			Schedule: "Daily · 5 PM",
			Badge:    "In-studio",
		},
		{
			Title:    "Cacao Passport",
			Detail:   "Monthly subscription unveiling new single-estate harvests and chef notes.",
			Schedule: "Ships 1st of month",
			Badge:    "Membership",
		},
		{
			Title:    "Chocolate Architecture Lab",
			Detail:   "Create your tablet with layered inclusions, textures, and aromatic finishes.",
			Schedule: "Weekends",
			Badge:    "Workshop",
		},
	}

	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	if err := db.Create(&collections).Error; err != nil {
		return err
	}
	return db.Create(&stories).Error
}
