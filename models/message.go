package models

import "time"

// Message is an admin-curated announcement. Only active messages surface
// on the dashboard feed.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Image       string    `json:"image"`
	Description string    `gorm:"not null" json:"description"`
	SentTime    time.Time `json:"sent_time"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}
