package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/internal/domain"
)

// Products returns the default demo catalog: 12 products across the fixed
// category set (4 Phones, 4 Accessories, 2 Watches, 1 Tablet, 1 Gaming).
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:            "phone-atlas-se",
			Name:          "Atlas SE Smartphone",
			Description:   "Compact 6.1-inch smartphone with an all-day battery and dual camera",
			Category:      "Phones",
			Price:         199,
			OriginalPrice: f(249),
			Discount:      "-20%",
			Rating:        4,
			Reviews:       213,
			Image:         "/images/phone-atlas-se.jpg",
			Colors:        []string{"Black", "White"},
			Sizes:         []string{"64GB", "128GB"},
		},
		{
			ID:          "phone-atlas-10",
			Name:        "Atlas 10",
			Description: "Mid-range smartphone with a 90Hz display and fast charging",
			Category:    "Phones",
			Price:       299,
			Rating:      4,
			Reviews:     157,
			Image:       "/images/phone-atlas-10.jpg",
			Colors:      []string{"Black", "Silver"},
			Sizes:       []string{"128GB", "256GB"},
		},
		{
			ID:            "phone-nova-lite",
			Name:          "Nova Lite 5G",
			Description:   "Slim 5G smartphone with a triple camera and OLED screen",
			Category:      "Phones",
			Price:         399,
			OriginalPrice: f(449),
			Discount:      "-11%",
			Rating:        5,
			Reviews:       98,
			Image:         "/images/phone-nova-lite.jpg",
			Colors:        []string{"White", "Blue"},
			Sizes:         []string{"128GB", "256GB"},
		},
		{
			ID:          "phone-nova-pro",
			Name:        "Nova Pro Max",
			Description: "Flagship smartphone with a 120Hz display and pro-grade cameras",
			Category:    "Phones",
			Price:       599,
			Rating:      5,
			Reviews:     341,
			Image:       "/images/phone-nova-pro.jpg",
			Colors:      []string{"Black", "Silver", "Gold"},
			Sizes:       []string{"256GB", "512GB"},
		},
		{
			ID:            "acc-drift-buds",
			Name:          "Drift Wireless Earbuds",
			Description:   "Noise-isolating earbuds with a pocket charging case",
			Category:      "Accessories",
			Price:         49,
			OriginalPrice: f(69),
			Discount:      "-29%",
			Rating:        4,
			Reviews:       502,
			Image:         "/images/acc-drift-buds.jpg",
			Colors:        []string{"Black", "White"},
		},
		{
			ID:          "acc-aero-headphones",
			Name:        "Aero Over-Ear Headphones",
			Description: "Studio headphone with active noise cancelling and 30-hour battery",
			Category:    "Accessories",
			Price:       129,
			Rating:      5,
			Reviews:     266,
			Image:       "/images/acc-aero-headphones.jpg",
			Colors:      []string{"Black", "Silver"},
		},
		{
			ID:          "acc-volt-charger",
			Name:        "Volt 65W GaN Charger",
			Description: "Dual-port fast charger for phones, tablets and laptops",
			Category:    "Accessories",
			Price:       39,
			Rating:      4,
			Reviews:     188,
			Image:       "/images/acc-volt-charger.jpg",
			Colors:      []string{"White"},
		},
		{
			ID:            "acc-shell-case",
			Name:          "Shell Rugged Phone Case",
			Description:   "Drop-tested case with raised edges and a matte grip finish",
			Category:      "Accessories",
			Price:         19,
			OriginalPrice: f(25),
			Discount:      "-24%",
			Rating:        4,
			Reviews:       77,
			Image:         "/images/acc-shell-case.jpg",
			Colors:        []string{"Black", "Blue", "Red"},
			Sizes:         []string{"Atlas 10", "Nova Pro Max"},
		},
		{
			ID:          "watch-pulse-2",
			Name:        "Pulse 2 Fitness Watch",
			Description: "Fitness tracker with heart-rate, sleep tracking and GPS",
			Category:    "Watches",
			Price:       149,
			Rating:      4,
			Reviews:     324,
			Image:       "/images/watch-pulse-2.jpg",
			Colors:      []string{"Black", "White"},
			Sizes:       []string{"S", "M", "L"},
		},
		{
			ID:            "watch-horizon",
			Name:          "Horizon Smartwatch",
			Description:   "Always-on AMOLED smartwatch with contactless payments",
			Category:      "Watches",
			Price:         249,
			OriginalPrice: f(299),
			Discount:      "-17%",
			Rating:        5,
			Reviews:       141,
			Image:         "/images/watch-horizon.jpg",
			Colors:        []string{"Silver", "Gold"},
			Sizes:         []string{"40mm", "44mm"},
		},
		{
			ID:          "tablet-slate-11",
			Name:        "Slate 11 Tablet",
			Description: "11-inch tablet for reading, streaming and note taking",
			Category:    "Tablets",
			Price:       329,
			Rating:      4,
			Reviews:     89,
			Image:       "/images/tablet-slate-11.jpg",
			Colors:      []string{"Silver", "Black"},
			Sizes:       []string{"64GB", "256GB"},
		},
		{
			ID:            "gaming-rift-controller",
			Name:          "Rift Pro Controller",
			Description:   "Low-latency wireless controller with swappable thumbsticks",
			Category:      "Gaming",
			Price:         69,
			OriginalPrice: f(79),
			Discount:      "-13%",
			Rating:        5,
			Reviews:       456,
			Image:         "/images/gaming-rift-controller.jpg",
			Colors:        []string{"Black", "White"},
		},
	}
}

// WriteFile writes the default catalog as JSON to path, for use with
// CATALOG_PATH. It overwrites an existing file.
func WriteFile(path string) error {
	raw, err := json.MarshalIndent(Products(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

func f(v float64) *float64 {
	return &v
}
