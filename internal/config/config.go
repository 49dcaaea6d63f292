package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	DatabasePath    string
	JWTSecret       string
	BaseURL         string // Public base URL used when building absolute links
	DefaultImageURL string // Fallback image reference when no file is uploaded
	UploadDir       string // Local directory backing /uploads
	MailAPIKey      string // Empty disables outbound mail
	MailAPIURL      string
	MailFrom        string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
	}

	baseURL := strings.TrimRight(getEnv("BASE_URL", fmt.Sprintf("http://localhost:%d", port)), "/")

	return &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./catalog.db"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		BaseURL:         baseURL,
		DefaultImageURL: getEnv("DEFAULT_IMAGE_URL", baseURL+"/uploads/default.png"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MailAPIKey:      getEnv("MAIL_API_KEY", ""),
		MailAPIURL:      getEnv("MAIL_API_URL", "https://api.sendgrid.com/v3/mail/send"),
		MailFrom:        getEnv("MAIL_FROM", "no-reply@localhost"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
