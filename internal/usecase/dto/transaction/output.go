package transactiondto

import (
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
)

type CreateChargeOutput struct {
	OrderID       string
	TransactionID string
	QRCode        string
	QRCodeImage   string
	ExpiresAt     string
}

type WebhookOutput struct {
	Acknowledged bool
	Message      string
	Status       domain.TransactionStatus
}

type StatusOutput struct {
	Status domain.TransactionStatus
	PaidAt *time.Time
}
