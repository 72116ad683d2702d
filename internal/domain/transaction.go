package domain

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusPaid      TransactionStatus = "paid"
	StatusCancelled TransactionStatus = "cancelled"
	StatusExpired   TransactionStatus = "expired"
)

// Terminal reports whether no further status transition is allowed.
func (s TransactionStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled || s == StatusExpired
}

type Customer struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

type TrackingParams struct {
	Src         string
	Sck         string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UTMContent  string
	UTMTerm     string
}

type LineItem struct {
	ID        string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Transaction is keyed by the gateway-assigned transaction id.
// Exactly one record exists per transaction id.
type Transaction struct {
	TransactionID string
	OrderID       string
	Status        TransactionStatus
	Amount        float64
	Customer      Customer
	Tracking      TrackingParams
	Items         []LineItem
	CreatedAt     time.Time
	PaidAt        *time.Time
}
