package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"
	defaultGeminiBase  = "https://generativelanguage.googleapis.com/v1beta/models"

	// The Gemini API makes no guarantee on generation latency, so an
	// unbounded client would park the request worker indefinitely.
	defaultUpstreamTimeout = 30 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Gemini API configuration
	GeminiAPIKey    string
	GeminiAPIURL    string
	GeminiModel     string
	UpstreamTimeout time.Duration

	// CORS configuration
	AllowedOrigins []string
}

// LoadConfig creates a new Config instance from environment variables.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:      os.Getenv("SERVER_HOST"),
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		GeminiModel:     getEnv("GEMINI_MODEL", defaultGeminiModel),
		UpstreamTimeout: defaultUpstreamTimeout,
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.GeminiAPIKey = apiKey

	cfg.GeminiAPIURL = os.Getenv("GEMINI_API_URL")
	if cfg.GeminiAPIURL == "" {
		cfg.GeminiAPIURL = fmt.Sprintf("%s/%s:generateContent", defaultGeminiBase, cfg.GeminiModel)
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		cfg.UpstreamTimeout = d
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// loadAPIKey resolves the Gemini credential from GOOGLE_API_KEY, falling
// back to reading the file named by GOOGLE_API_KEY_FILE.
func loadAPIKey() (string, error) {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("GOOGLE_API_KEY_FILE")
	if keyFile == "" {
		return "", fmt.Errorf("GOOGLE_API_KEY or GOOGLE_API_KEY_FILE must be set")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
