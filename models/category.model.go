package models

type Category struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Icon  string `gorm:"size:100" json:"icon"`
	Color string `gorm:"size:30" json:"color"`
}
