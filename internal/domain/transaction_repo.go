package domain

import "time"

type TransactionRepository interface {
	// Save inserts or overwrites the record for tx.TransactionID.
	Save(tx *Transaction) error
	// GetByID returns ErrTransactionNotFound for unknown ids.
	GetByID(transactionID string) (*Transaction, error)
	// UpdateStatus mutates the record in place. Unknown ids and
	// transitions out of a terminal status are logged no-ops, never
	// errors. paidAt is recorded only when the new status is paid.
	UpdateStatus(transactionID string, newStatus TransactionStatus, paidAt *time.Time) error
}
