package domain

// ForwarderPort delivers order events to the attribution service off the
// primary request path. Implementations must never block the caller and
// must swallow delivery failures.
type ForwarderPort interface {
	Notify(tx *Transaction, status OrderEventStatus)
}
