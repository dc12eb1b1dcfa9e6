// Package config provides configuration loading and validation for the
// server and CLI commands.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the settings the API server needs to run. Both backing
// stores are required; everything else has a sensible default.
type Config struct {
	Port          int
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	UploadDir     string
	UploadBaseURL string
	WebhookSecret string // optional, identity webhook is disabled when empty
}

// New creates a server configuration from environment variables.
// It reads DATABASE_URL and MONGODB_URI (required), and PORT (default 8080),
// MONGODB_DATABASE (default talentdesk), UPLOAD_DIR (default ./uploads),
// UPLOAD_BASE_URL (default /uploads), and WEBHOOK_SECRET.
func New() (*Config, error) {
	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: envOrDefault("MONGODB_DATABASE", "talentdesk"),
		UploadDir:     envOrDefault("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: envOrDefault("UPLOAD_BASE_URL", "/uploads"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required but not set")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("MONGODB_DATABASE cannot be empty")
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
