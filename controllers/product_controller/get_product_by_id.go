package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RoboMarket/robomarket-backend/catalog"
	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductRecord
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.Error("Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := engine.GetProduct(ctx, productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.Error("Product not found"))
		return
	}
	if err != nil {
		log.Printf("ERROR in product lookup: %v", err)
		c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, product)
}
