package main

import (
	"listenup/backend/config"
	"listenup/backend/middleware"
	"listenup/backend/routes"
	"listenup/backend/seed"
	"listenup/backend/utils"
	"log"

	_ "listenup/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title ListenUp English API
// @version 1.0
// @description REST API for the ListenUp English learning platform.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	if cfg.SeedDemoData {
		if err := seed.Run(db); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
