package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	GallerySource   string
	SecretKey       string
	BucketName      string
	Port            string
	AssetsBase      string
	ViewsDir        string
	DefaultLanguage string
	CacheTTL        time.Duration
}

// ErrGallerySourceNotSet is returned when the GALLERY_SOURCE environment variable is not set
var ErrGallerySourceNotSet = errors.New("GALLERY_SOURCE environment variable not set")

// ErrSecretKeyNotSet is returned when the SECRET_KEY environment variable is not set
var ErrSecretKeyNotSet = errors.New("SECRET_KEY environment variable not set")

// ErrBucketNameNotSet is returned when the BUCKET_NAME environment variable is not set
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrInvalidLanguage is returned when DEFAULT_LANGUAGE is neither "ro" nor "en"
var ErrInvalidLanguage = errors.New("DEFAULT_LANGUAGE must be \"ro\" or \"en\"")

// LoadDotEnv reads a .env file from the working directory if one exists.
// Values already present in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	source := os.Getenv("GALLERY_SOURCE")
	if source == "" {
		return nil, ErrGallerySourceNotSet
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	assetsBase := os.Getenv("ASSETS_BASE")
	if assetsBase == "" {
		assetsBase = "/gallery-assets/"
	}
	if !strings.HasSuffix(assetsBase, "/") {
		assetsBase += "/"
	}

	viewsDir := os.Getenv("VIEWS_DIR")
	if viewsDir == "" {
		viewsDir = "./views"
	}

	lang := strings.ToLower(os.Getenv("DEFAULT_LANGUAGE"))
	switch lang {
	case "":
		lang = "ro"
	case "ro", "en":
	default:
		return nil, ErrInvalidLanguage
	}

	ttl := 5 * time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", raw, err)
		}
		ttl = d
	}

	return &Config{
		GallerySource:   source,
		SecretKey:       os.Getenv("SECRET_KEY"),
		BucketName:      os.Getenv("BUCKET_NAME"),
		Port:            port,
		AssetsBase:      assetsBase,
		ViewsDir:        viewsDir,
		DefaultLanguage: lang,
		CacheTTL:        ttl,
	}, nil
}

// RequireSecretKey fails when the admin routes would be mounted without a key
func (c *Config) RequireSecretKey() error {
	if c.SecretKey == "" {
		return ErrSecretKeyNotSet
	}
	return nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Portfolio URL: http://localhost:%s/portfolio\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/%s/feed\n", c.Port, c.SecretKey)
}
