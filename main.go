// @title KK Engineering Site API
// @version 1.0
// @description Content-managed website and back-office API
// @host localhost:8081
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/routes/cms_routes"
	"github.com/sjmedialabs/kkengineering-sub000/routes/site_routes"
	"github.com/sjmedialabs/kkengineering-sub000/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection (optional; rate limiting degrades to no-op without it)
	config.ConnectRedis()

	if err := config.DB.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Service{},
		&models.Enquiry{},
		&models.GalleryItem{},
		&models.Client{},
		&models.Testimonial{},
		&models.Settings{},
		&models.Content{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("❌ Auto-migration failed: %v", err)
	}

	repository.Init(repository.NewGormRepository(config.DB, config.Pool))

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Cloudinary is optional in local dev; uploads return 503 without it.
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		cld, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		services.InitCloudinary(cld)
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ Cloudinary credentials not set, media uploads disabled")
	}

	services.InitMailer(config.LoadMailerConfig())

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")

	// Back office at /api/admin
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Public site API at /api
	site_routes.SetupSiteRoutes(api)
	log.Println("✅ Site routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}
