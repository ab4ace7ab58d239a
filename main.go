package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/youssefmarket/storefront-api/config"
	"github.com/youssefmarket/storefront-api/controllers"
	"github.com/youssefmarket/storefront-api/services"
	"github.com/youssefmarket/storefront-api/session"
	"github.com/youssefmarket/storefront-api/state"
	"github.com/youssefmarket/storefront-api/store"
)

func main() {
	// Basic logging
	log.Println("Starting Storefront API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Select the data source once for the lifetime of the process
	if cfg.IsBackendConfigured() {
		if err := config.ConnectDatabase(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	}
	src := store.Select(cfg, config.GetDB())

	if gormSrc, ok := src.(*store.GormSource); ok {
		if err := gormSrc.Migrate(); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Database migration completed successfully")
	}

	// Image storage is optional; without it the upload endpoint reports
	// itself unavailable.
	var images services.ImageService
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.NewS3Service(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		images = services.NewImageService(s3Service)
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	app := state.NewStore(src)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	app.Load(ctx)
	cancel()

	resolver := session.NewResolver(cfg, src)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", controllers.CartTokenHeader},
		ExposeHeaders: []string{controllers.CartTokenHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/api/v1/health", healthCheck)
	router.GET("/api/v1/status", statusCheck(cfg))

	controllers.RegisterRoutes(router, controllers.Deps{
		App:      app,
		Resolver: resolver,
		Images:   images,
	})

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Storefront API is running",
	})
}

// statusCheck reports the active data-source mode and, when a backend is
// configured, database connectivity.
func statusCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.IsBackendConfigured() {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"mode":    "demo",
				"message": "Running against in-memory demo data",
			})
			return
		}

		sqlDB, err := config.GetDB().DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"mode":    "backend",
			"message": "Database connected",
		})
	}
}
