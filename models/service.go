package models

import "time"

type Service struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Name             string        `gorm:"not null" json:"name"`
	Category         string        `json:"category"`
	Price            float64       `gorm:"not null" json:"price"`
	Discount         float64       `gorm:"default:0" json:"discount"`
	Image            string        `json:"image"`
	ShortDescription string        `json:"short_description"`
	AddedAt          time.Time     `json:"added_at"`
	AvailableTill    *time.Time    `json:"available_till"`
	Items            []ServiceItem `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"items"`
}

type ServiceItem struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ServiceID       uint   `gorm:"index;not null" json:"service_id"`
	ItemName        string `gorm:"not null" json:"item_name"`
	ItemDescription string `json:"item_description"`
}
