package models

// FilterMetadata represents all filter data for the storefront sidebar.
type FilterMetadata struct {
	Brands     []FilterCount   `json:"brands"`
	Categories []FilterCount   `json:"categories"`
	PriceRange *PriceRangeData `json:"priceRange"`
}

// FilterCount is a single filter option with its matching product count.
type FilterCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
