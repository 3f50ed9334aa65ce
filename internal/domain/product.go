package domain

// Product is a catalog record. The catalog owns these; nothing else in the
// system mutates them.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Discount      string   `json:"discount,omitempty"`
	Rating        int      `json:"rating"`
	Reviews       int      `json:"reviews"`
	Image         string   `json:"image,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
}
