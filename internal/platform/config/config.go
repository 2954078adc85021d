package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORE_BACKEND.
const (
	StoreBackendJSON     = "json"
	StoreBackendPostgres = "postgres"
)

// AppName names the data directory and the default token issuer.
const AppName = "cleaning_tracker"

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StoreBackend  string
	DataDir       string
	DatabaseURL   string
	EnableDBCheck bool

	AuthEnabled          bool
	OperatorPasswordHash string
	JWTSecret            string
	JWTExpiryDuration    time.Duration
	JWTIssuer            string

	RateLimit          string
	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5001")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_BACKEND", StoreBackendJSON)
	v.SetDefault("DATA_DIR", filepath.Join(xdg.DataHome, AppName))
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", AppName)
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		StoreBackend:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		DataDir:              v.GetString("DATA_DIR"),
		DatabaseURL:          v.GetString("PGSQL_URL"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		AuthEnabled:          v.GetBool("AUTH_ENABLED"),
		OperatorPasswordHash: v.GetString("OPERATOR_PASSWORD_HASH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:            strings.ToLower(v.GetString("LOG_FORMAT")),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "5001"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.StoreBackend == StoreBackendJSON && cfg.DatabaseURL != "" {
		log.Println("Warning: PGSQL_URL is set but STORE_BACKEND is json; the database will not be used.")
	}

	return cfg, nil
}

// Validate rejects combinations the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case StoreBackendJSON:
		if c.DataDir == "" {
			errs = append(errs, errors.New("DATA_DIR must be set for the json store"))
		}
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("PGSQL_URL must be set for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q (want %s or %s)", c.StoreBackend, StoreBackendJSON, StoreBackendPostgres))
	}
	if c.AuthEnabled {
		if c.OperatorPasswordHash == "" {
			errs = append(errs, errors.New("AUTH_ENABLED requires OPERATOR_PASSWORD_HASH"))
		}
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("AUTH_ENABLED requires JWT_SECRET"))
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel))
	}
	return errors.Join(errs...)
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
