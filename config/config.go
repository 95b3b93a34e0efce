// config.go - Handles configuration for the project

package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port           string        // HTTP listen port
	DBPath         string        // Path to the SQLite database file
	JWTSecret      string        // Secret key for signing tokens
	TokenTTL       time.Duration // Lifetime of issued tokens
	BcryptCost     int           // Work factor for password hashing
	AdminEmail     string        // Seeded administrator account
	AdminPassword  string
	SeedSampleData bool // Seed demo subjects/courses/classes on startup
}

// Load reads config from environment variables or uses defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "school.db"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:     getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@school.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
