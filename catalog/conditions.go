package catalog

import (
	"fmt"
	"strings"
)

// buildConditions translates a FilterSpec into one shared predicate list.
// The count query and the data query are both assembled from this list, so a
// filter added here is automatically applied to both.
func buildConditions(spec FilterSpec) (conditions []string, args []any) {
	conditions = []string{}
	args = []any{}

	// Search query (name or description)
	if spec.Search != "" {
		conditions = append(conditions, "(p.name ILIKE ? OR p.description ILIKE ?)")
		args = append(args, "%"+spec.Search+"%", "%"+spec.Search+"%")
	}

	// Category filter (overlap with the product's category set)
	if len(spec.Categories) > 0 {
		placeholders := make([]string, len(spec.Categories))
		for i, name := range spec.Categories {
			placeholders[i] = "?"
			args = append(args, name)
		}
		cond := fmt.Sprintf(
			`EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(p.categories) AS category_name
				WHERE category_name IN (%s)
			)`,
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Brand filter (exact membership)
	if len(spec.Brands) > 0 {
		placeholders := make([]string, len(spec.Brands))
		for i, brand := range spec.Brands {
			placeholders[i] = "?"
			args = append(args, brand)
		}
		cond := fmt.Sprintf("p.brand IN (%s)", strings.Join(placeholders, ","))
		conditions = append(conditions, cond)
	}

	// Featured-only filter
	if spec.FeaturedOnly {
		conditions = append(conditions, "p.featured_position IS NOT NULL")
	}

	// Price range filter, applied only when it differs from the defaults so we
	// never issue a no-op range predicate.
	if spec.PriceMin > 0 {
		conditions = append(conditions, "p.best_price >= ?")
		args = append(args, spec.PriceMin)
	}
	if spec.PriceMax != nil {
		conditions = append(conditions, "p.best_price <= ?")
		args = append(args, *spec.PriceMax)
	}

	// Rating floor
	if spec.MinRating > 0 {
		conditions = append(conditions, "p.rating_average >= ?")
		args = append(args, spec.MinRating)
	}

	return conditions, args
}

// whereClause joins the predicate list with AND. With no active filters the
// clause must still be valid SQL.
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return "TRUE"
	}
	return strings.Join(conditions, " AND ")
}

// orderClause maps a sort key to its ORDER BY clause. Every sort is secondarily
// ordered by id ascending so records with equal primary-sort values keep a
// stable position across pages.
func orderClause(sortBy string) string {
	switch sortBy {
	case SortFeatured:
		return "p.featured_position ASC NULLS LAST, p.id ASC"
	case SortPriceAsc:
		return "p.best_price ASC NULLS LAST, p.id ASC"
	case SortPriceDesc:
		return "p.best_price DESC NULLS LAST, p.id ASC"
	case SortRating:
		return "p.rating_average DESC, p.id ASC"
	case SortPopularity:
		return "p.rating_count DESC, p.id ASC"
	default:
		return "p.created_at DESC, p.id ASC"
	}
}
