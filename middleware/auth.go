package middleware

import (
	"net/http"
	"strings"

	"github.com/RoboMarket/robomarket-backend/models"
	"github.com/RoboMarket/robomarket-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("session_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.Error("Authorization required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.Error("Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := services.VerifySessionJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Error("Invalid or expired session"))
			c.Abort()
			return
		}

		session := models.Session{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		}
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
		}

		// Set session info in context
		c.Set("session", session)

		c.Next()
	}
}

// GetSessionFromContext returns the session placed on the context by
// AuthMiddleware.
func GetSessionFromContext(c *gin.Context) (models.Session, bool) {
	value, exists := c.Get("session")
	if !exists {
		return models.Session{}, false
	}
	session, ok := value.(models.Session)
	return session, ok
}
