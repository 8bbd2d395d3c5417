package models

import (
	"time"
)

// Expense is an administrator-entered outgoing entry. The payment path
// never writes expenses.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Purpose     string    `gorm:"not null" json:"purpose"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"` // paise
	ImageURL    string    `json:"image_url"`
	Date        time.Time `gorm:"index" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
