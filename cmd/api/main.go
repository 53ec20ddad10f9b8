package main

import (
	"log"
	"os"
	"time"

	"github.com/cafeandino/encuestas-api/internal/infrastructure/database"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/middleware"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		// Increase concurrency for better performance
		Concurrency: 256 * 1024,
		// Prefork deshabilitado, causa inestabilidad en el contenedor
		Prefork: false,
		// Set reasonable body limit
		BodyLimit: 10 * 1024 * 1024, // 10MB
		// Configure server for better performance
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 API de encuestas escuchando en el puerto %s", port)
	log.Fatal(app.Listen(":" + port))
}
