package models

import (
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
)

type TransactionModel struct {
	TransactionID string                   `gorm:"primaryKey"`
	OrderID       string                   `gorm:"index:idx_order_id"`
	Status        domain.TransactionStatus `gorm:"index:idx_status"`
	Amount        float64

	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerDocument string

	TrackingJSON string `gorm:"type:jsonb"`
	ItemsJSON    string `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
	PaidAt    *time.Time
}
