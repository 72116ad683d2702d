package domain

import "context"

type ChargeInput struct {
	OrderID     string
	Amount      float64
	Customer    Customer
	Items       []LineItem
	CallbackURL string
	Tracking    TrackingParams
}

// ChargeResult is the normalized shape of the gateway's heterogeneous
// charge-creation response. Failures are carried in Success/Error, not
// as Go errors: the gateway call never propagates an error to its caller.
type ChargeResult struct {
	Success       bool
	TransactionID string
	QRCode        string
	QRCodeImage   string
	ExpiresAt     string
	Error         string
}

type PixGateway interface {
	CreateCharge(ctx context.Context, input *ChargeInput) *ChargeResult
}
