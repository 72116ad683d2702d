package kafka

import (
	"encoding/json"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
)

type TransactionEvent struct {
	TransactionID string    `json:"transaction_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Message encodes the event for publishing, keyed by transaction id so
// all events for one transaction land on the same partition.
func (e TransactionEvent) Message() (domain.Message, error) {
	v, err := json.Marshal(e)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Key: []byte(e.TransactionID), Value: v}, nil
}
