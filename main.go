package main

import (
	"log"

	"github.com/KhushiYadav18/ET-learning-project/config"
	"github.com/KhushiYadav18/ET-learning-project/database"
	"github.com/KhushiYadav18/ET-learning-project/ledger"
	"github.com/KhushiYadav18/ET-learning-project/routers/analyticsRoutes"
	"github.com/KhushiYadav18/ET-learning-project/routers/authRoutes"
	"github.com/KhushiYadav18/ET-learning-project/routers/courseRoutes"
	"github.com/KhushiYadav18/ET-learning-project/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.New(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Seed(db.Db); err != nil {
		log.Printf("Warning: seeding sample data failed: %v", err)
	}

	progressLedger := ledger.New(db.Db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,x-session-id",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db.Db)
	courseRoutes.SetupCourseRoutes(app, db.Db, progressLedger)
	analyticsRoutes.SetupAnalyticsRoutes(app, db.Db)

	retention := utils.InitializeRetentionScheduler(db.Db, config.AppConfig.AnalyticsRetentionDays)
	defer retention.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
