package models

// SeedProducts returns the fixed catalog. Prices are in cents.
func SeedProducts() []Product {
	return []Product{
		{
			ID: 1, Name: "Wireless Headphones", PriceCents: 12999, Emoji: "🎧",
			Rating: 4.5, Category: "Electronics",
			Description: "Premium sound quality with noise cancellation",
			Specs: []Spec{
				{Label: "Battery Life", Value: "30 hours"},
				{Label: "Connectivity", Value: "Bluetooth 5.0"},
				{Label: "Weight", Value: "250g"},
				{Label: "Warranty", Value: "2 years"},
			},
			Features: []string{
				"Active Noise Cancellation",
				"Wireless charging case",
				"Premium leather cushions",
				"Built-in microphone",
				"Foldable design",
			},
			InStock: true, StockCount: 15,
		},
		{
			ID: 2, Name: "Smart Watch", PriceCents: 29999, Emoji: "⌚",
			Rating: 4.8, Category: "Electronics",
			Description: "Track your fitness and health goals",
			Specs: []Spec{
				{Label: "Display", Value: "1.9\" AMOLED"},
				{Label: "Battery", Value: "7 days"},
				{Label: "Water Resistance", Value: "5ATM"},
				{Label: "GPS", Value: "Built-in"},
			},
			Features: []string{
				"Heart rate monitoring",
				"Sleep tracking",
				"GPS navigation",
				"Waterproof design",
				"Voice assistant",
				"Customizable watch faces",
			},
			InStock: true, StockCount: 8,
		},
		{
			ID: 3, Name: "Laptop Stand", PriceCents: 4999, Emoji: "💻",
			Rating: 4.2, Category: "Accessories",
			Description: "Ergonomic aluminum stand for better posture",
			Specs: []Spec{
				{Label: "Material", Value: "Aluminum Alloy"},
				{Label: "Adjustability", Value: "6 angles"},
				{Label: "Max Load", Value: "10kg"},
				{Label: "Compatibility", Value: "10-17 inch laptops"},
			},
			Features: []string{
				"Heat dissipation design",
				"Non-slip rubber pads",
				"Cable management",
				"Portable and foldable",
				"Scratch-resistant surface",
			},
			InStock: true, StockCount: 23,
		},
		{
			ID: 4, Name: "USB-C Cable", PriceCents: 1999, Emoji: "🔌",
			Rating: 4.6, Category: "Accessories",
			Description: "Fast charging and data transfer",
			Specs: []Spec{
				{Label: "Length", Value: "2 meters"},
				{Label: "Power", Value: "100W PD"},
				{Label: "Data Speed", Value: "480 Mbps"},
				{Label: "Durability", Value: "10,000+ bends"},
			},
			Features: []string{
				"Fast charging support",
				"Braided nylon design",
				"Reinforced connectors",
				"Universal compatibility",
				"Tangle-free",
			},
			InStock: true, StockCount: 45,
		},
		{
			ID: 5, Name: "Wireless Mouse", PriceCents: 3999, Emoji: "🖱️",
			Rating: 4.4, Category: "Accessories",
			Description: "Precision tracking and comfortable grip",
			Specs: []Spec{
				{Label: "DPI", Value: "Up to 4000"},
				{Label: "Battery", Value: "6 months"},
				{Label: "Connectivity", Value: "2.4GHz + Bluetooth"},
				{Label: "Buttons", Value: "6 programmable"},
			},
			Features: []string{
				"Ergonomic design",
				"Silent clicking",
				"Dual connectivity",
				"Rechargeable battery",
				"Multi-device pairing",
			},
			InStock: true, StockCount: 19,
		},
		{
			ID: 6, Name: "Mechanical Keyboard", PriceCents: 14999, Emoji: "⌨️",
			Rating: 4.7, Category: "Electronics",
			Description: "RGB backlit with tactile switches",
			Specs: []Spec{
				{Label: "Switch Type", Value: "Blue Tactile"},
				{Label: "Layout", Value: "Full-size (104 keys)"},
				{Label: "RGB", Value: "Per-key customizable"},
				{Label: "Build", Value: "Aluminum frame"},
			},
			Features: []string{
				"Hot-swappable switches",
				"RGB backlighting",
				"Programmable macros",
				"Detachable USB-C cable",
				"N-key rollover",
				"Media controls",
			},
			InStock: true, StockCount: 12,
		},
		{
			ID: 7, Name: "Phone Case", PriceCents: 2499, Emoji: "📱",
			Rating: 4.3, Category: "Accessories",
			Description: "Durable protection with sleek design",
			Specs: []Spec{
				{Label: "Material", Value: "TPU + PC"},
				{Label: "Drop Protection", Value: "Military grade"},
				{Label: "Thickness", Value: "2mm"},
				{Label: "Compatibility", Value: "iPhone 15 Pro"},
			},
			Features: []string{
				"Shock absorption",
				"Raised camera protection",
				"Wireless charging compatible",
				"Anti-fingerprint coating",
				"Precise cutouts",
			},
			InStock: false, StockCount: 0,
		},
		{
			ID: 8, Name: "Portable Charger", PriceCents: 5999, Emoji: "🔋",
			Rating: 4.5, Category: "Electronics",
			Description: "High capacity power bank for on-the-go",
			Specs: []Spec{
				{Label: "Capacity", Value: "20,000 mAh"},
				{Label: "Output", Value: "65W PD"},
				{Label: "Ports", Value: "2x USB-C, 1x USB-A"},
				{Label: "Recharge Time", Value: "3 hours"},
			},
			Features: []string{
				"Fast charging support",
				"LED power indicator",
				"Multiple device charging",
				"Compact design",
				"Safety protection",
				"Pass-through charging",
			},
			InStock: true, StockCount: 27,
		},
	}
}

// SeedOrders returns the demo order history shipped with the app.
func SeedOrders() []Order {
	products := SeedProducts()
	return []Order{
		{
			ID:   "ORD-001",
			Date: "2024-01-15",
			Items: []CartItem{
				{Product: products[0], Quantity: 1},
			},
			TotalCents: 12999,
			Status:     StatusDelivered,
		},
		{
			ID:   "ORD-002",
			Date: "2024-01-20",
			Items: []CartItem{
				{Product: products[1], Quantity: 1},
			},
			TotalCents: 29999,
			Status:     StatusShipped,
		},
	}
}
