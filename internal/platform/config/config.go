// Package config loads the process-wide configuration from the environment.
// The returned Config is read-only after startup; business logic receives
// values through constructors and never touches the environment itself.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is the fallback signing secret used when JWT_SECRET is
// unset. Shipping with it in production is a known vulnerability; main logs
// a loud warning when Config.JWTSecretIsDefault is true.
const DefaultJWTSecret = "secret"

const (
	defaultAddr     = ":8080"
	defaultTokenTTL = 7 * 24 * time.Hour
	defaultCacheTTL = 5 * time.Minute
)

// Config holds every externally supplied setting, read once at startup.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DBDriver selects the storage backend: "mysql" (default) or "postgres".
	DBDriver string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// InstanceConnectionName, when set, switches the MySQL DSN to a
	// Cloud SQL unix socket.
	InstanceConnectionName string

	// RunMigrations enables gorm AutoMigrate on startup.
	RunMigrations bool

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string

	// JWTSecretIsDefault reports whether the insecure fallback secret is
	// in use.
	JWTSecretIsDefault bool

	// TokenTTL is the bearer token lifetime from issuance.
	TokenTTL time.Duration

	// BcryptCost is the password hashing cost factor.
	BcryptCost int

	// RedisAddr is host:port of the cache; empty disables caching.
	RedisAddr     string
	RedisPassword string

	// CacheTTL bounds how long a cached note list may be served.
	CacheTTL time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:                   envOr("ADDR", defaultAddr),
		DBDriver:               envOr("DB_DRIVER", "mysql"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBName:                 os.Getenv("DB_NAME"),
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		RunMigrations:          os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:              os.Getenv("JWT_SECRET"),
		TokenTTL:               envDurationOr("TOKEN_TTL", defaultTokenTTL),
		BcryptCost:             envIntOr("BCRYPT_COST", bcrypt.DefaultCost),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		CacheTTL:               envDurationOr("CACHE_TTL", defaultCacheTTL),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		cfg.JWTSecretIsDefault = true
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + envOr("REDIS_PORT", "6379")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
