package transactiondto

import (
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
)

type CreateChargeInput struct {
	Amount   float64
	Customer domain.Customer
	Items    []domain.LineItem
	Tracking domain.TrackingParams
}

type WebhookInput struct {
	Event         string
	TransactionID string
	RawStatus     string
	PaidAt        *time.Time
	CorrelationID string
}
