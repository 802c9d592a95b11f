package config

import (
	"log"
	"os"

	"github.com/yurakhomitsky/E-Shop/models"
	"github.com/yurakhomitsky/E-Shop/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Electronics", Icon: "devices", Color: "#1E88E5"},
		{Name: "Home & Garden", Icon: "home", Color: "#43A047"},
		{Name: "Beauty", Icon: "spa", Color: "#EC407A"},
	}

	for _, category := range categories {
		var existing models.Category
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to check category %s: %v", category.Name, err)
			continue
		}

		category.ID = uuid.New().String()
		if err := db.Create(&category).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", category.Name, err)
		} else {
			log.Printf("Category seeded: %s (ID: %s)", category.Name, category.ID)
		}
	}
}

// SeedAdminUser creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", email)
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	} else {
		log.Printf("Admin user seeded: %s (ID: %s)", admin.Email, admin.ID)
	}
}
