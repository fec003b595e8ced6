package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/servease/servease-api/database"
	"github.com/servease/servease-api/routes"
	"github.com/servease/servease-api/uploads"
)

func main() {
	log.Println("Starting servease backend...")

	_ = godotenv.Load()

	db := database.Connect()

	// Schema changes run as an explicit deploy step, never while serving.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Schema migrated")
		return
	}

	r := gin.Default()

	// Uploads are bounded per the registration contract.
	r.MaxMultipartMemory = uploads.MaxImageSize

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", uploads.Dir())

	routes.SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
