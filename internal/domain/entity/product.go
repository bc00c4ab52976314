package entity

import "time"

// Product is a catalog item. Category may be empty for legacy rows; the
// catalog auto-detects it from the name on create.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductWithRating is a Product joined with its review aggregates.
type ProductWithRating struct {
	Product
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

// ProductSummary is the trimmed shape returned by the budget planner.
// Description is cut to 150 characters, matching the storefront UI card.
type ProductSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// ProductFilter holds the catalog listing filters.
type ProductFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Category  string
	Sort      string // "rating_desc" | "price_asc" | "price_desc" | "" (newest)
}
