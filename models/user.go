package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DPFilename string    `json:"dp_filename"`
	Name       string    `gorm:"not null" json:"name"`
	Mobile     string    `gorm:"uniqueIndex;not null" json:"mobile"`
	Email      string    `json:"email"`
	Location   string    `json:"location"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt  time.Time `json:"created_at"`
}
