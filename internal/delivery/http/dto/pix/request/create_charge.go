package request

type CreateChargeRequest struct {
	Amount   float64        `json:"amount"`
	Customer Customer       `json:"customer"`
	Items    []LineItem     `json:"items"`
	Tracking TrackingParams `json:"tracking"`
}

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"cpf"`
}

type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type TrackingParams struct {
	Src         string `json:"src"`
	Sck         string `json:"sck"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`
}
