package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort        int
	DatabasePath      string
	JWTSecret         string
	TokenTTL          time.Duration
	CohereAPIKey      string
	CohereAPIURL      string
	GenerationTimeout time.Duration
	EventRetention    time.Duration
	AllowedOrigins    []string
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is picked up if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	// The token signing secret has no default: it is process-wide state,
	// initialized here once and read-only for the process lifetime.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttlHours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "168"))
	if err != nil {
		return nil, err
	}

	genTimeout, err := strconv.Atoi(getEnv("GENERATION_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, err
	}

	retentionDays, err := strconv.Atoi(getEnv("EVENT_RETENTION_DAYS", "30"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:        port,
		DatabasePath:      getEnv("DATABASE_PATH", "./fridgechef.db"),
		JWTSecret:         secret,
		TokenTTL:          time.Duration(ttlHours) * time.Hour,
		CohereAPIKey:      os.Getenv("COHERE_API_KEY"),
		CohereAPIURL:      getEnv("COHERE_API_URL", "https://api.cohere.ai/v1/generate"),
		GenerationTimeout: time.Duration(genTimeout) * time.Second,
		EventRetention:    time.Duration(retentionDays) * 24 * time.Hour,
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
