package category_controller

import (
	"net/http"

	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all category names with product counts for the storefront navigation
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {array} models.FilterCount
// @Failure 500 {object} models.ErrorBody
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			category_name AS name,
			COUNT(p.id)::int AS count
		FROM storefront_products p,
		     jsonb_array_elements_text(p.categories) AS category_name
		GROUP BY category_name
		ORDER BY name ASC
	`

	categories := make([]models.FilterCount, 0)
	if err := config.CatalogGorm.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, categories)
}
