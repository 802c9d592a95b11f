package models

import (
	"time"
)

// Stock bounds enforced on create and update.
const (
	MinCountInStock = 0
	MaxCountInStock = 999
)

type Product struct {
	ID              string   `gorm:"primaryKey;size:36" json:"id"`
	Name            string   `gorm:"size:255;not null" json:"name"`
	Description     string   `gorm:"type:text;not null" json:"description"`
	RichDescription string   `gorm:"type:text" json:"richDescription"`
	Image           string   `json:"image"`
	Images          []string `gorm:"serializer:json" json:"images"`
	Brand           string   `gorm:"size:100" json:"brand"`
	Price           float64  `json:"price"`

	CategoryID string   `gorm:"size:36;not null;index" json:"-"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	CountInStock int     `gorm:"not null" json:"countInStock"`
	Rating       float64 `json:"rating"`
	NumOfReviews int     `json:"numOfReviews"`
	IsFeatured   bool    `gorm:"default:false" json:"isFeatured"`

	DateCreated time.Time `gorm:"autoCreateTime" json:"dateCreated"`
}
