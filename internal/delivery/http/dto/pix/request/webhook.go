package request

type WebhookRequest struct {
	Event         string      `json:"event"`
	TransactionID string      `json:"transaction_id"`
	Status        string      `json:"status"`
	PaidAt        string      `json:"paid_at"`
	PayerName     string      `json:"payer_name"`
	PayerDocument string      `json:"payer_document"`
	Data          WebhookData `json:"data"`
}

// WebhookData carries the embedded correlation id some gateway event
// versions nest under "data".
type WebhookData struct {
	CorrelationID string `json:"correlation_id"`
}
