package models

import "time"

type Menu struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Discount    float64   `gorm:"default:0" json:"discount"`
	AddedAt     time.Time `json:"added_at"`
}
