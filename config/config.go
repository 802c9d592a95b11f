package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	Host        string
	DatabaseURL string

	// JWT Settings
	JWTSecret     string
	JWTExpiration time.Duration
}

const defaultJWTExpiration = 24 * time.Hour

func LoadConfig() *Config {
	// Env vars may come from the environment itself, so a missing
	// .env file is not fatal.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "3000"),
		Host:        getEnv("HOST", ""),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: parseExpiration(os.Getenv("JWT_EXPIRES_IN")),
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseExpiration(raw string) time.Duration {
	if raw == "" {
		return defaultJWTExpiration
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid JWT_EXPIRES_IN %q, using default %s", raw, defaultJWTExpiration)
		return defaultJWTExpiration
	}
	return d
}
