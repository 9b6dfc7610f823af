package session_controller

import (
	"net/http"

	"github.com/RoboMarket/robomarket-backend/middleware"
	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get current session
// @Description Check authentication status and return the session contract consumed by the storefront
// @Tags Storefront - Session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Session
// @Failure 401 {object} models.ErrorBody "Unauthorized"
// @Router /me [get]
func GetMe(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.Error("Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, session)
}
