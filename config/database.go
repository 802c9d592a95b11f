package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MustOpenDatabase opens the database connection from DATABASE_URL.
func MustOpenDatabase(cfg *Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty (check your .env)")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	return db
}
