package filter_controller

import (
	"net/http"
	"sync"

	filter_cache "github.com/RoboMarket/robomarket-backend/cache"
	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns brand counts, category counts, and the price range for storefront filters
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.FilterMetadata
// @Failure 500 {object} models.ErrorBody
// @Router /filters [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := filter_cache.Get(); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	db := config.CatalogGorm

	// Run the three aggregate queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	// 1. Brand counts
	wg.Add(1)
	go func() {
		defer wg.Done()
		brands, err := getBrandCounts(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Brands = brands
		}
	}()

	// 2. Category counts
	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, err := getCategoryCounts(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Categories = categories
		}
	}()

	// 3. Price range
	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getPriceRange(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch filter metadata"))
		return
	}

	filter_cache.Set(metadata)
	c.JSON(http.StatusOK, metadata)
}

// getBrandCounts counts listed products per brand.
func getBrandCounts(db *gorm.DB) ([]models.FilterCount, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			p.brand AS name,
			COUNT(p.id)::int AS count
		FROM storefront_products p
		WHERE p.brand IS NOT NULL
		GROUP BY p.brand
		ORDER BY count DESC, name ASC
	`

	brands := make([]models.FilterCount, 0)
	err := db.WithContext(ctx).Raw(query).Scan(&brands).Error
	if err != nil {
		return nil, err
	}

	return brands, nil
}

// getCategoryCounts counts listed products per category name. Categories live
// on the projection as a jsonb array, so each element is unnested first.
func getCategoryCounts(db *gorm.DB) ([]models.FilterCount, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			category_name AS name,
			COUNT(p.id)::int AS count
		FROM storefront_products p,
		     jsonb_array_elements_text(p.categories) AS category_name
		GROUP BY category_name
		ORDER BY count DESC, name ASC
	`

	categories := make([]models.FilterCount, 0)
	err := db.WithContext(ctx).Raw(query).Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// getPriceRange fetches the minimum and maximum best-vendor prices.
func getPriceRange(db *gorm.DB) (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(p.best_price), 0)::float8 AS min,
			COALESCE(MAX(p.best_price), 0)::float8 AS max
		FROM storefront_products p
		WHERE p.best_price IS NOT NULL
	`

	var priceRange models.PriceRangeData
	err := db.WithContext(ctx).Raw(query).Scan(&priceRange).Error
	if err != nil {
		return nil, err
	}

	return &priceRange, nil
}
