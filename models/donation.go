package models

import (
	"time"
)

// Donation represents one confirmed payment in the public ledger.
// PaymentID is the gateway-assigned payment identifier and doubles as the
// idempotency key: redelivered webhooks for the same payment merge into
// this row instead of appending a duplicate.
type Donation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PaymentID string    `gorm:"uniqueIndex;not null" json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Name      string    `gorm:"default:'Anonymous'" json:"name"`
	Amount    int64     `json:"amount"` // paise
	Mode      string    `json:"mode"`   // upi, card, netbanking, cash
	Status    string    `json:"status"` // gateway-reported, e.g. captured
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
