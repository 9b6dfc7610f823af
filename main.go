// @title RoboMarket Storefront API
// @version 1.0
// @description Customer-facing catalog API for the RoboMarket storefront
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/RoboMarket/robomarket-backend/catalog"
	"github.com/RoboMarket/robomarket-backend/config"
	"github.com/RoboMarket/robomarket-backend/controllers/product_controller"
	_ "github.com/RoboMarket/robomarket-backend/docs"
	"github.com/RoboMarket/robomarket-backend/middleware"
	"github.com/RoboMarket/robomarket-backend/routes"
	"github.com/RoboMarket/robomarket-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection (rate limiting)
	config.ConnectRedis()

	// ✅ Initialize JWT Service for the session contract
	jwtSecret := os.Getenv("SESSION_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ SESSION_JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Wire the catalog engine against the storefront projection
	engine := catalog.NewEngine(catalog.NewGormStore(config.CatalogGorm))
	product_controller.Init(engine)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.RequestID())

	// Liveness probe
	router.GET("/healthz", func(c *gin.Context) {
		if err := config.CatalogDB.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes
	api := router.Group("/api")
	api.Use(middleware.RateLimiter(300, time.Minute))
	routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
