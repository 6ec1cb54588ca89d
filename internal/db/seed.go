package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/models"
)

// Seed populates an empty catalog with the starter product set. It is a
// no-op when any product already exists.
func Seed(db *gorm.DB) error {
	var total int64
	if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if total > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "JBL Flip 6 Portable Speaker",
			Description: "Bold sound for every adventure. The JBL Flip 6 delivers powerful JBL Original Pro Sound with exceptional clarity.",
			Price:       decimal.RequireFromString("129.99"),
			StockStatus: models.StockInStock,
			Category:    "Speakers",
			SubCategory: "JBL",
			Brand:       "JBL",
			Images:      []string{"https://images.unsplash.com/photo-1612444530582-fc66183b16f7?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Power": "20W", "Battery": "12 Hours", "Waterproof": "IP67",
			},
			IsFeatured: true,
		},
		{
			Name:        "5 Core 15 Inch PA Woofer",
			Description: "High power handling and efficient design make this woofer a great choice for PA systems.",
			Price:       decimal.RequireFromString("89.50"),
			StockStatus: models.StockLimitedStock,
			Category:    "Speakers",
			SubCategory: "5 Core",
			Brand:       "5 Core",
			Images:      []string{"https://images.unsplash.com/photo-1558525046-2495dc857d4a?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Size": "15 Inch", "Power": "1500W PMPO", "Impedance": "8 Ohm",
			},
		},
		{
			Name:        "Professional Audio Mixer",
			Description: "8-Channel compact mixer with high headroom and low noise performance.",
			Price:       decimal.RequireFromString("199.00"),
			StockStatus: models.StockInStock,
			Category:    "Audio Equipment",
			SubCategory: "Amplifiers",
			Brand:       "Yamaha",
			Images:      []string{"https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Channels": "8", "Effects": "Built-in SPX", "USB": "Yes",
			},
			IsFeatured: true,
		},
		{
			Name:        "Wireless Microphone System",
			Description: "Dual channel wireless microphone system for crystal clear vocal performance.",
			Price:       decimal.RequireFromString("149.99"),
			StockStatus: models.StockInStock,
			Category:    "Audio Equipment",
			SubCategory: "Mics & Stands",
			Brand:       "Shure",
			Images:      []string{"https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Range": "300 ft", "Battery Life": "14 Hours",
			},
		},
		{
			Name:        "High Performance Gigabit Router",
			Description: "Dual-band WiFi 6 router for high-speed streaming and gaming.",
			Price:       decimal.RequireFromString("79.99"),
			StockStatus: models.StockInStock,
			Category:    "Networking",
			SubCategory: "Routers",
			Brand:       "TP-Link",
			Images:      []string{"https://images.unsplash.com/photo-1544197150-b99a580bbcbf?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Speed": "AX1800", "Ports": "4 Gigabit",
			},
			IsFeatured: true,
		},
		{
			Name:        "Car Audio Subwoofer Kit",
			Description: "Complete car audio upgrade kit with subwoofer and amplifier.",
			Price:       decimal.RequireFromString("249.99"),
			StockStatus: models.StockOutOfStock,
			Category:    "Car Audio",
			SubCategory: "Car Sets",
			Brand:       "Pioneer",
			Images:      []string{"https://images.unsplash.com/photo-1549488497-657743d46777?auto=format&fit=crop&q=80&w=500"},
			Specifications: map[string]string{
				"Power": "1200W", "Size": "12 Inch",
			},
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}
