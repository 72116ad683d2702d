package response

type CreateChargeResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	QRCode        string `json:"qr_code"`
	QRCodeImage   string `json:"qr_code_image,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
	PaidAt string `json:"paid_at,omitempty"`
}

type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
