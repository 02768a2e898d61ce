package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const devJWTSecret = "covoit-dev-secret"

// Config holds every tunable of the API process. Values come from the
// environment (optionally seeded by a .env file) with defaults that let the
// binary run against a local Postgres.
type Config struct {
	Port    string
	GinMode string

	PostgresURL string
	AutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// TokenJanitorSpec is the cron spec used to purge expired revocations
	// from the in-memory token store.
	TokenJanitorSpec string

	LogFile  string
	LogLevel string

	CORSAllowedOrigins []string
}

func defaultConfig() Config {
	return Config{
		Port:             "8080",
		AutoMigrate:      true,
		JWTTTL:           72 * time.Hour,
		TokenJanitorSpec: "@every 10m",
		LogFile:          "./logs/app.log",
		LogLevel:         "info",
		CORSAllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:8080",
		},
	}
}

// Load reads the .env file when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := defaultConfig()
	var errs []error

	setString(&cfg.Port, "PORT")
	setString(&cfg.GinMode, "GIN_MODE")

	cfg.PostgresURL = strings.TrimSpace(os.Getenv("POSTGRES_URL"))
	if cfg.PostgresURL == "" {
		cfg.PostgresURL = postgresDSNFromParts()
	}
	setBool(&cfg.AutoMigrate, "DB_AUTO_MIGRATE", &errs)

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	setDuration(&cfg.JWTTTL, "JWT_TTL", &errs)

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	setInt(&cfg.RedisDB, "REDIS_DB", &errs)
	setString(&cfg.TokenJanitorSpec, "TOKEN_JANITOR_SPEC")

	setString(&cfg.LogFile, "LOG_FILE")
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitAndTrim(origins)
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			errs = append(errs, errors.New("JWT_SECRET is required in release mode"))
		} else {
			cfg.JWTSecret = devJWTSecret
		}
	}
	if cfg.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be > 0"))
	}

	return cfg, errors.Join(errs...)
}

// UsesDevSecret reports whether the fallback signing key is in use.
func (c Config) UsesDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

func postgresDSNFromParts() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "password"),
		getEnv("DB_NAME", "covoit"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
		getEnv("DB_TIMEZONE", "Africa/Abidjan"),
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func setString(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setDuration(target *time.Duration, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = d
	}
}

func setInt(target *int, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = i
	}
}

func setBool(target *bool, key string, errs *[]error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
			return
		}
		*target = b
	}
}

func splitAndTrim(v string) []string {
	raw := strings.Split(v, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
