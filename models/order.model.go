package models

import (
	"time"
)

// Order is read-only in the current API: orders are listed but their
// lifecycle (placement, fulfilment) is not part of this service.
type Order struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Status     string  `gorm:"size:30;default:'pending'" json:"status"`
	TotalPrice float64 `json:"totalPrice"`

	UserID string `gorm:"size:36;index" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`

	DateOrdered time.Time `gorm:"autoCreateTime" json:"dateOrdered"`
}
