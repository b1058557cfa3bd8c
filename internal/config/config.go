package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	CORSOrigins   []string
	SeedDemoUsers bool
}

// Load reads configuration from the environment and performs minimal
// validation. The database URL and signing secret are required; everything
// else has a default.
func Load() (Config, error) {
	cfg := Config{
		Port:          fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:     fallback(os.Getenv("JWT_ISSUER"), "crimetrack-api"),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		SeedDemoUsers: parseBool(os.Getenv("SEED_DEMO_USERS"), true),
	}

	// Sessions last 7 days unless overridden.
	hours := fallback(os.Getenv("TOKEN_TTL_HOURS"), "168")
	if ttlHours, err := strconv.Atoi(hours); err == nil && ttlHours > 0 {
		cfg.TokenTTL = time.Duration(ttlHours) * time.Hour
	} else {
		cfg.TokenTTL = 168 * time.Hour
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseBool(value string, def bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
