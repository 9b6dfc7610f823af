package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when the caller sends no usable limit.
	DefaultLimit = 20
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 50
)

// Sort keys accepted by the storefront listing endpoint.
const (
	SortFeatured   = "featured"
	SortNewest     = "newest"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRating     = "rating"
	SortPopularity = "popularity"
)

// FilterSpec is the normalized set of catalog query parameters for one request.
// It is built once per request by ParseFilterSpec and passed to the engine;
// both the count query and the data query are derived from the same value.
type FilterSpec struct {
	Limit        int
	Offset       int
	FeaturedOnly bool
	SortBy       string
	Categories   []string
	Brands       []string
	Search       string
	PriceMin     float64
	PriceMax     *float64 // nil means unbounded
	MinRating    int
}

// ParseFilterSpec maps raw query-string values to a FilterSpec. Unusable
// values (non-numeric numbers, unknown sort keys) fall back to the documented
// defaults instead of failing the request.
func ParseFilterSpec(values url.Values) FilterSpec {
	spec := FilterSpec{
		Limit:  DefaultLimit,
		SortBy: SortNewest,
	}

	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v >= 1 {
		spec.Limit = v
	}
	if spec.Limit > MaxLimit {
		spec.Limit = MaxLimit
	}

	if v, err := strconv.Atoi(values.Get("offset")); err == nil && v > 0 {
		spec.Offset = v
	}

	spec.FeaturedOnly = values.Get("featured") == "true"

	switch sortBy := values.Get("sort_by"); sortBy {
	case SortFeatured, SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortPopularity:
		spec.SortBy = sortBy
	}

	spec.Categories = SplitList(values.Get("category"))
	spec.Brands = SplitList(values.Get("brand"))
	spec.Search = strings.TrimSpace(values.Get("search"))

	if v, err := strconv.ParseFloat(values.Get("price_min"), 64); err == nil && v > 0 {
		spec.PriceMin = v
	}
	if v, err := strconv.ParseFloat(values.Get("price_max"), 64); err == nil {
		spec.PriceMax = &v
	}

	if v, err := strconv.ParseFloat(values.Get("rating"), 64); err == nil {
		// Fractional input is floored: a request for 4.5 behaves as 4.
		rating := int(math.Floor(v))
		if rating > 5 {
			rating = 5
		}
		if rating > 0 {
			spec.MinRating = rating
		}
	}

	return spec
}

// SplitList turns a comma-separated value into a set of trimmed, non-empty
// tokens. An empty result means "no filter on this dimension".
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
