// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Load .env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds every setting used by the API server and the import commands.
type Config struct {
	Port         int
	AllowOrigins []string
	LogLevel     string

	Database Database
	Auth     Auth
	// RedisURL is optional; when empty the in-memory stores are used.
	RedisURL           string
	RateLimitPerSecond uint

	FranceTravail FranceTravail
	Adzuna        Adzuna
	Import        Import
}

// Database holds connection parameters for Postgres.
type Database struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	ConnStr    string
	UseConnStr bool
}

// Auth holds JWT signing settings.
type Auth struct {
	SecretKey string
	Issuer    string
	TokenTTL  time.Duration
}

// FranceTravail holds the OAuth2 client credentials and endpoints of the
// France Travail job offers API.
type FranceTravail struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	SearchURL    string
}

// Adzuna holds the Adzuna API credentials.
type Adzuna struct {
	AppID   string
	AppKey  string
	Country string
	BaseURL string
}

// Import holds the job import settings.
type Import struct {
	Sources     []string
	Keywords    string
	Experience  int
	Range       string
	Schedule    string
	HTTPTimeout time.Duration
}

// Load populates config from environment variables. Credentials of external
// job sources are not checked here: the source that needs them does it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               8080,
		LogLevel:           "info",
		RateLimitPerSecond: 5,
		Auth: Auth{
			Issuer:   "DevJobHub",
			TokenTTL: time.Hour,
		},
		Import: Import{
			Sources:     []string{"francetravail"},
			Keywords:    "développeur javascript",
			Experience:  1,
			Range:       "0-14",
			HTTPTimeout: 15 * time.Second,
		},
	}

	var err error

	if v := os.Getenv("PORT"); v != "" {
		if cfg.Port, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("PORT must be an integer, got %q", v)
		}
	}

	if v := os.Getenv("ALLOW_ORIGIN"); v != "" {
		cfg.AllowOrigins = splitList(v)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.Database = Database{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_DATABASE"),
		ConnStr:  os.Getenv("DB_CONNECTION_STR"),
	}
	if v := os.Getenv("USE_CONNECTION_STR"); v != "" {
		if cfg.Database.UseConnStr, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("USE_CONNECTION_STR environments variables are invalid: %w", err)
		}
	}

	cfg.Auth.SecretKey = os.Getenv("SECRET_KEY")
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.Auth.Issuer = v
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		if cfg.Auth.TokenTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("JWT_TTL must be a duration, got %q", v)
		}
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")

	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND must be a positive integer, got %q", v)
		}
		cfg.RateLimitPerSecond = uint(n)
	}

	cfg.FranceTravail = FranceTravail{
		ClientID:     os.Getenv("FRANCE_TRAVAIL_CLIENT_ID"),
		ClientSecret: os.Getenv("FRANCE_TRAVAIL_CLIENT_SECRET"),
		TokenURL:     os.Getenv("FRANCE_TRAVAIL_TOKEN_URL"),
		SearchURL:    os.Getenv("FRANCE_TRAVAIL_SEARCH_URL"),
	}

	cfg.Adzuna = Adzuna{
		AppID:   os.Getenv("ADZUNA_APP_ID"),
		AppKey:  os.Getenv("ADZUNA_APP_KEY"),
		Country: os.Getenv("ADZUNA_COUNTRY"),
		BaseURL: os.Getenv("ADZUNA_BASE_URL"),
	}
	if cfg.Adzuna.Country == "" {
		cfg.Adzuna.Country = "fr"
	}

	if v := os.Getenv("IMPORT_SOURCES"); v != "" {
		cfg.Import.Sources = splitList(v)
	}
	if v := os.Getenv("IMPORT_KEYWORDS"); v != "" {
		cfg.Import.Keywords = v
	}
	if v := os.Getenv("IMPORT_EXPERIENCE"); v != "" {
		if cfg.Import.Experience, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("IMPORT_EXPERIENCE must be an integer, got %q", v)
		}
	}
	if v := os.Getenv("IMPORT_RANGE"); v != "" {
		cfg.Import.Range = v
	}
	cfg.Import.Schedule = os.Getenv("IMPORT_SCHEDULE")
	if v := os.Getenv("IMPORT_HTTP_TIMEOUT"); v != "" {
		if cfg.Import.HTTPTimeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("IMPORT_HTTP_TIMEOUT must be a duration, got %q", v)
		}
	}

	return cfg, nil
}

// RequireSecret reports an error when no JWT signing key is configured.
func (c *Config) RequireSecret() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
