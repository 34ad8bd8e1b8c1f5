package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are process-level options read from the environment
type Settings struct {
	LogLevel  string
	LogFormat string // json or text
	APIKey    string
	BaseURL   string
}

// LoadSettings reads settings from the environment after loading envFile
// (or .env when empty). A missing default .env is not an error.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Settings{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	return Settings{
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "text")),
		APIKey:    os.Getenv("EODHD_API_KEY"),
		BaseURL:   os.Getenv("EODHD_BASE_URL"),
	}, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
