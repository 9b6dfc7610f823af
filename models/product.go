package models

import "time"

// ProductRecord is the denormalized storefront projection of a product,
// read from the storefront_products materialized view. It is read-only from
// the API's perspective; every filter and sort operates on these fields only.
type ProductRecord struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Brand            *string   `json:"brand"`
	Categories       []string  `json:"categories"`
	BestPrice        *float64  `json:"best_price"` // absent when no vendor offers the product
	Rating           Rating    `json:"rating"`
	FeaturedPosition *int      `json:"featured_position,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Rating is the aggregated review summary carried on the projection.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
