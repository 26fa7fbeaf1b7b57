package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/handlers"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the portfolio pages, the JSON API and the admin feed.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				logging.Logger.Fatal("Failed to load configuration", "err", err)
			}
			if err := cfg.RequireSecretKey(); err != nil {
				logging.Logger.Fatal("Failed to load configuration", "err", err)
			}
			services.InitService(cfg)
			serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the portfolio
func serveWebsite(cfg *config.Config) {
	router := handlers.New(services.Default()).Router()

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), router); err != nil {
		logging.Logger.Fatal("Server error", "err", err)
	}
}
