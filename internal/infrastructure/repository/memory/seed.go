package memory

import (
	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultProducts is the storefront's static product list
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Wireless Bluetooth Headphones",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "images/wirelessbluetoothheadphones1.jpg",
			Description: "Experience immersive sound with these comfortable and stylish wireless headphones. Featuring long-lasting battery life and crystal-clear audio.",
			Category:    "Electronics",
		},
		{
			ID:          "p2",
			Name:        "Smartwatch with Heart Rate Monitor",
			Price:       decimal.RequireFromString("129.99"),
			Image:       "images/Smartwatch.jpg",
			Description: "Stay connected and track your fitness goals with this advanced smartwatch. Comes with a vibrant display and multiple sports modes.",
			Category:    "Electronics",
		},
		{
			ID:          "p3",
			Name:        "Ergonomic Office Chair",
			Price:       decimal.RequireFromString("249.00"),
			Image:       "images/officechair.jpg",
			Description: "Improve your posture and comfort with this premium ergonomic office chair. Designed for long hours of work.",
			Category:    "Home & Office",
		},
		{
			ID:          "p4",
			Name:        "Portable Espresso Maker",
			Price:       decimal.RequireFromString("59.50"),
			Image:       "images/espressomaker1.jpg",
			Description: "Enjoy your favorite coffee on the go with this compact and easy-to-use portable espresso maker. Perfect for travel and outdoor adventures.",
			Category:    "Kitchen",
		},
		{
			ID:          "p5",
			Name:        "Noise-Cancelling Earbuds",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "images/earbuds1.jpg",
			Description: "Immerse yourself in your music with these high-fidelity noise-cancelling earbuds. Perfect for commutes and focus.",
			Category:    "Electronics",
		},
		{
			ID:          "p6",
			Name:        "Digital Camera 4K",
			Price:       decimal.RequireFromString("499.00"),
			Image:       "images/digitalcamera1.jpg",
			Description: "Capture stunning photos and videos with this professional-grade 4K digital camera. Easy to use for beginners, powerful for pros.",
			Category:    "Electronics",
		},
		{
			ID:          "p7",
			Name:        "Robot Vacuum Cleaner",
			Price:       decimal.RequireFromString("349.00"),
			Image:       "images/vacuumcleaner1.jpg",
			Description: "Keep your home spotless effortlessly with this smart robot vacuum. Schedule cleanings and control from your phone.",
			Category:    "Home Appliances",
		},
		{
			ID:          "p8",
			Name:        "Luxury Leather Wallet",
			Price:       decimal.RequireFromString("65.00"),
			Image:       "images/leatherwallet1.jpg",
			Description: "A sleek and durable leather wallet with multiple card slots and a coin pouch. Crafted for elegance and utility.",
			Category:    "Accessories",
		},
	}
}
