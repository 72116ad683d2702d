package attribution

// Payload shapes follow the attribution service's order-event schema:
// flattened customer block, line items in cents, campaign tags and a
// commission breakdown in cents.

type OrderPayload struct {
	OrderID            string             `json:"orderId"`
	Platform           string             `json:"platform"`
	PaymentMethod      string             `json:"paymentMethod"`
	Status             string             `json:"status"`
	CreatedAt          string             `json:"createdAt"`
	ApprovedDate       string             `json:"approvedDate,omitempty"`
	Customer           CustomerPayload    `json:"customer"`
	Products           []ProductPayload   `json:"products"`
	TrackingParameters TrackingPayload    `json:"trackingParameters"`
	Commission         CommissionPayload  `json:"commission"`
}

type CustomerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

type ProductPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	PriceInCents int64  `json:"priceInCents"`
}

type TrackingPayload struct {
	Src         string `json:"src"`
	Sck         string `json:"sck"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`
}

type CommissionPayload struct {
	TotalPriceInCents     int64 `json:"totalPriceInCents"`
	GatewayFeeInCents     int64 `json:"gatewayFeeInCents"`
	UserCommissionInCents int64 `json:"userCommissionInCents"`
}
