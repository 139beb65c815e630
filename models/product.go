package models

// Spec is a single label/value row in a product's specification table.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Emoji       string   `json:"emoji"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Specs       []Spec   `json:"specs"`
	Features    []string `json:"features"`
	InStock     bool     `json:"in_stock"`
	StockCount  int      `json:"stock_count"`
}
