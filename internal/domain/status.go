package domain

import "strings"

// MapGatewayStatus collapses the gateway's free-form status vocabulary
// into the canonical set. Matching is case-insensitive and total:
// unrecognized strings fall back to pending.
func MapGatewayStatus(raw string) TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "approved", "completed":
		return StatusPaid
	case "cancelled", "canceled", "refused":
		return StatusCancelled
	case "expired":
		return StatusExpired
	default:
		return StatusPending
	}
}

type OrderEventStatus string

const (
	EventStatusWaiting OrderEventStatus = "waiting"
	EventStatusPaid    OrderEventStatus = "paid"
	EventStatusRefused OrderEventStatus = "refused"
)

// OrderEventStatus projects a canonical status onto the attribution
// service's vocabulary.
func (s TransactionStatus) OrderEventStatus() OrderEventStatus {
	switch s {
	case StatusPaid:
		return EventStatusPaid
	case StatusCancelled, StatusExpired:
		return EventStatusRefused
	default:
		return EventStatusWaiting
	}
}
