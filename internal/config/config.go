package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime settings read from the environment.
// Call godotenv.Load before Load to pick up a local .env file.
type Config struct {
	Port            string
	DatabaseDSN     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	LocalesPath     string
	DefaultLanguage string
}

// Load reads the configuration from environment variables, applying
// development defaults where a variable is unset.
func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getenv("JWT_SECRET", "dev-secret-change-me"),
		LocalesPath:     getenv("LOCALES_PATH", "locales"),
		DefaultLanguage: getenv("DEFAULT_LANGUAGE", "es"),
	}

	cfg.RedisDB, _ = strconv.Atoi(getenv("REDIS_DB", "0"))

	cfg.DatabaseDSN = fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "user"),
		getenv("DB_PASSWORD", "password"),
		getenv("DB_NAME", "impulsadb"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
	)

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
