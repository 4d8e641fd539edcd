package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/civicwatch/api-go/config"
	"github.com/civicwatch/api-go/logger"
	"github.com/civicwatch/api-go/middleware"
	"github.com/civicwatch/api-go/routes"
)

func main() {
	// .env is optional; deployed environments pass variables directly.
	_ = godotenv.Load()

	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")

	if err := config.CheckEnv(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize database
	db := config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// Initialize routes
	routes.SetupRoutes(r, db)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
