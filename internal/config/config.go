/*
Package config loads the process configuration from the environment.
A local .env file is honored when present.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable the API reads at startup.
type Config struct {
	Port     int
	AppEnv   string
	LogLevel string

	// DatabaseURL takes precedence over the BLUEPRINT_DB_* parts when set.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPassword  string
	DBSchema    string

	GeminiAPIKey     string
	GeminiModel      string
	GeminiTimeout    time.Duration
	GeminiMaxRetries int

	SessionSecret string

	// Location decides which calendar day counts as "today".
	Location *time.Location

	CORSAllowOrigins []string

	// ChatRateLimit is the number of AI requests a caller may make per minute.
	ChatRateLimit int
}

// Load reads the environment (after merging .env) and applies defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, utilizing system environment")
	}

	cfg := &Config{
		Port:             envInt("PORT", 8080),
		AppEnv:           envString("APP_ENV", "production"),
		LogLevel:         envString("LOG_LEVEL", "info"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBHost:           os.Getenv("BLUEPRINT_DB_HOST"),
		DBPort:           envString("BLUEPRINT_DB_PORT", "5432"),
		DBName:           os.Getenv("BLUEPRINT_DB_DATABASE"),
		DBUser:           os.Getenv("BLUEPRINT_DB_USERNAME"),
		DBPassword:       os.Getenv("BLUEPRINT_DB_PASSWORD"),
		DBSchema:         envString("BLUEPRINT_DB_SCHEMA", "public"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envString("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiMaxRetries: envInt("GEMINI_MAX_RETRIES", 3),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		ChatRateLimit:    envInt("CHAT_RATE_LIMIT", 20),
		Location:         time.Local,
	}

	timeout, err := time.ParseDuration(envString("GEMINI_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TIMEOUT: %w", err)
	}
	cfg.GeminiTimeout = timeout

	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// ConnString builds the postgres DSN used by the pgx pool.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSchema)
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local" || c.AppEnv == "development"
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
