package product_controller

import (
	"log"
	"net/http"

	"github.com/RoboMarket/robomarket-backend/catalog"
	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/gin-gonic/gin"
)

// Successful catalog responses are safe to share briefly at the CDN while
// revalidating in the background.
const cacheControl = "public, max-age=0, s-maxage=60, stale-while-revalidate=300"

var engine *catalog.Engine

// Init wires the catalog engine used by the product handlers.
func Init(e *catalog.Engine) {
	engine = e
}

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve a filtered, sorted, paginated page of products with the exact total count.
// @Tags Storefront - Products
// @Produce json
// @Param limit query int false "Page size (1-50)" default(20)
// @Param offset query int false "Pagination offset" default(0)
// @Param featured query string false "Set to 'true' to only return featured products"
// @Param sort_by query string false "Sort key (featured | newest | price-asc | price-desc | rating | popularity)" default(newest)
// @Param category query string false "Category names (comma-separated)"
// @Param brand query string false "Brand names (comma-separated)"
// @Param search query string false "Search query (name or description)"
// @Param price_min query number false "Minimum best-vendor price"
// @Param price_max query number false "Maximum best-vendor price"
// @Param rating query number false "Minimum rating (floored to an integer)"
// @Success 200 {object} catalog.ResultPage
// @Failure 500 {object} models.ErrorBody
// @Router /products [get]
func GetProducts(c *gin.Context) {
	spec := catalog.ParseFilterSpec(c.Request.URL.Query())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	page, err := engine.Query(ctx, spec)
	if err != nil {
		log.Printf("ERROR in catalog query: %v", err)
		c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, page)
}
