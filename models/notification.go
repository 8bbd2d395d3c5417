package models

import (
	"time"
)

// Notification is a broadcast message shown on the dashboard.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
