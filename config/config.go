package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Placeholder sentinel values. A backend configuration equal to these (or
// absent, or malformed) switches the application into demo mode against
// in-memory seed data.
const (
	PlaceholderDatabaseURL = "postgres://placeholder.invalid/storefront"
	PlaceholderAPIKey      = "placeholder-api-key"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL        string
	BackendAPIKey      string
	Port               string
	GoEnv              string
	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	LogLevel           string
}

var configInstance *Config

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", PlaceholderDatabaseURL),
		BackendAPIKey:      getEnv("BACKEND_API_KEY", PlaceholderAPIKey),
		Port:               getEnv("PORT", "8080"),
		GoEnv:              getEnv("GO_ENV", "development"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	configInstance = config
	return config, nil
}

// IsBackendConfigured reports whether a real persistent backend is available.
// It is true only when both the connection URL and the API key are present,
// the URL parses, and neither value equals its placeholder sentinel. Anything
// else is not an error: the application runs in demo mode instead.
func (c *Config) IsBackendConfigured() bool {
	if c.DatabaseURL == "" || c.BackendAPIKey == "" {
		return false
	}
	if c.DatabaseURL == PlaceholderDatabaseURL || c.BackendAPIKey == PlaceholderAPIKey {
		return false
	}
	return isValidURL(c.DatabaseURL)
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// GetConfig returns the loaded configuration instance
func GetConfig() *Config {
	return configInstance
}

// SetConfig sets the configuration instance (primarily for testing)
func SetConfig(cfg *Config) {
	configInstance = cfg
}

// isValidURL checks that the value parses as an absolute URL
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
