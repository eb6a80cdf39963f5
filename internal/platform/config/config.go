package config

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret    = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer    = "ledger-engine"
	defaultBaseCurrency = "USD"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string // ulule limiter format, e.g. "100-M"
	MigrationsPath     string

	DBMaxConns       int32
	DBConnectTimeout time.Duration

	DefaultBaseCurrency string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("DEFAULT_BASE_CURRENCY", defaultBaseCurrency)

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	maxConns := v.GetInt("DB_MAX_CONNS")
	if maxConns <= 0 {
		log.Printf("Warning: Invalid value for DB_MAX_CONNS (%d). Using pool default.\n", maxConns)
		maxConns = 0
	}
	cfg.DBMaxConns = int32(maxConns)

	connectTimeoutStr := v.GetString("DB_CONNECT_TIMEOUT")
	connectTimeout, err := time.ParseDuration(connectTimeoutStr)
	if err != nil {
		connectTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for DB_CONNECT_TIMEOUT ('%s'). Defaulting to %s.\n", connectTimeoutStr, connectTimeout)
	}
	cfg.DBConnectTimeout = connectTimeout

	cfg.DefaultBaseCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_BASE_CURRENCY")))
	if err := validator.New().Var(cfg.DefaultBaseCurrency, "required,iso4217"); err != nil {
		log.Printf("Warning: Invalid DEFAULT_BASE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.DefaultBaseCurrency, defaultBaseCurrency)
		cfg.DefaultBaseCurrency = defaultBaseCurrency
	}

	return cfg, nil
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
