package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

// Configuration flags
var (
	secretKey     string
	bucketName    string
	portNumber    string
	gallerySource string
	debug         bool
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "studio-portfolio",
		Short: "Studio Portfolio serves and manages a bilingual photo and video portfolio",
		Long: `Studio Portfolio is a command line application that serves a filterable photo and
video portfolio in Romanian and English. The gallery document can live on a web server,
in Google Cloud Storage or on disk.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(debug)
		},
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "s", "", "Set the SECRET_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&gallerySource, "source", "g", "", "Set the GALLERY_SOURCE (overrides environment variable)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListItemsCmd())
	rootCmd.AddCommand(newShowItemCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newImportBucketCmd())
	rootCmd.AddCommand(newBrowseCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if secretKey != "" {
		os.Setenv("SECRET_KEY", secretKey)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if gallerySource != "" {
		os.Setenv("GALLERY_SOURCE", gallerySource)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// loadItems initializes the default service and loads the gallery, exiting on failure
func loadItems(ctx context.Context) []models.GalleryItem {
	cfg, err := LoadConfig()
	if err != nil {
		logging.Logger.Fatal("Failed to load configuration", "err", err)
	}
	services.InitService(cfg)

	result := services.Load(ctx)
	if !result.Ready() {
		logging.Logger.Fatal("Failed to load gallery", "err", result.Err)
	}
	return result.Items
}
