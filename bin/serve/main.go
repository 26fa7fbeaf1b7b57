package main

import (
	"net/http"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/handlers"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/services"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logging.Logger.Warn("Failed to read .env file", "err", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("Failed to load configuration", "err", err)
	}
	if err := cfg.RequireSecretKey(); err != nil {
		logging.Logger.Fatal("Failed to load configuration", "err", err)
	}

	// Initialize services
	services.InitService(cfg)
	router := handlers.New(services.Default()).Router()

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), router); err != nil {
		logging.Logger.Fatal("Server error", "err", err)
	}
}
