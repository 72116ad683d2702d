package gateway

type chargeRequest struct {
	APIKey      string         `json:"api_key"`
	APISecret   string         `json:"api_secret"`
	Amount      float64        `json:"amount"`
	OrderID     string         `json:"external_id"`
	CallbackURL string         `json:"callback_url"`
	PayerName   string         `json:"payer_name"`
	PayerEmail  string         `json:"payer_email"`
	PayerPhone  string         `json:"payer_phone"`
	PayerDoc    string         `json:"payer_document"`
	Items       []chargeItem   `json:"items,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

type chargeItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// chargeResponse lists every field-name variant the gateway has been
// seen to return. The schema is not guaranteed, so each logical field
// is probed across its aliases.
type chargeResponse struct {
	TransactionID  string `json:"transaction_id"`
	ID             string `json:"id"`
	TxID           string `json:"txid"`
	QRCode         string `json:"qr_code"`
	PixCode        string `json:"pix_code"`
	CopyPaste      string `json:"copy_paste"`
	QRCodeImage    string `json:"qr_code_image"`
	QRCodeBase64   string `json:"qr_code_base64"`
	ExpiresAt      string `json:"expires_at"`
	ExpirationDate string `json:"expiration_date"`

	Message string `json:"message"`
	Error   string `json:"error"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
