package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store and sequence backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	StoreBackend    string // postgres | memory
	SequenceBackend string // postgres | redis | memory
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	PaymentNumberPrefix string
	MigrationsPath      string

	JWTSecret string
	JWTIssuer string

	PosthogAPIKey   string
	PosthogEndpoint string

	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_BACKEND", BackendPostgres)
	v.SetDefault("SEQUENCE_BACKEND", BackendPostgres)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PAYMENT_NUMBER_PREFIX", "PAY")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "jewel-backoffice")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		StoreBackend:        strings.ToLower(v.GetString("STORE_BACKEND")),
		SequenceBackend:     strings.ToLower(v.GetString("SEQUENCE_BACKEND")),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		PaymentNumberPrefix: v.GetString("PAYMENT_NUMBER_PREFIX"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     v.GetString("POSTHOG_ENDPOINT"),
		RateLimit:           v.GetString("RATE_LIMIT"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	switch cfg.StoreBackend {
	case BackendPostgres, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q", cfg.StoreBackend)
	}
	switch cfg.SequenceBackend {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid SEQUENCE_BACKEND %q", cfg.SequenceBackend)
	}
	if cfg.SequenceBackend == BackendPostgres && cfg.StoreBackend != BackendPostgres {
		return nil, fmt.Errorf("SEQUENCE_BACKEND=postgres requires STORE_BACKEND=postgres")
	}

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.PaymentNumberPrefix == "" {
		cfg.PaymentNumberPrefix = "PAY"
	}

	return cfg, nil
}
