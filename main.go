package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/SNAndreatta/prode-master/cache"
	"github.com/SNAndreatta/prode-master/config"
	"github.com/SNAndreatta/prode-master/database"
	authRoutes "github.com/SNAndreatta/prode-master/routers/authRoutes"
	catalogRoutes "github.com/SNAndreatta/prode-master/routers/catalogRoutes"
	predictionRoutes "github.com/SNAndreatta/prode-master/routers/predictionRoutes"
	tournamentRoutes "github.com/SNAndreatta/prode-master/routers/tournamentRoutes"
	"github.com/SNAndreatta/prode-master/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	cache.Connect()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	predictionRoutes.SetupPredictionRoutes(app)
	tournamentRoutes.SetupTournamentRoutes(app)

	utils.InitializeSyncScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
