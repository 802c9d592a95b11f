package models

type User struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:100;not null" json:"email"`

	// Stored as a bcrypt hash, never serialized.
	Password string `gorm:"not null" json:"-"`

	Phone   string `gorm:"size:30" json:"phone"`
	IsAdmin bool   `gorm:"default:false" json:"isAdmin"`

	Street    string `gorm:"size:255" json:"street"`
	Apartment string `gorm:"size:50" json:"apartment"`
	Zip       string `gorm:"size:20" json:"zip"`
	City      string `gorm:"size:100" json:"city"`
	Country   string `gorm:"size:100" json:"country"`
}
