package inmemory

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
)

// TransactionRepository is a process-lifetime store. Records survive only
// as long as the process; there is no expiry or GC. The mutex serializes
// concurrent webhook deliveries for the same transaction id.
type TransactionRepository struct {
	mu  sync.RWMutex
	txs map[string]*domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		txs: make(map[string]*domain.Transaction),
	}
}

func (r *TransactionRepository) Save(tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tx
	stored.Items = append([]domain.LineItem(nil), tx.Items...)
	r.txs[tx.TransactionID] = &stored
	return nil
}

func (r *TransactionRepository) GetByID(transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.txs[transactionID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	tx := *stored
	tx.Items = append([]domain.LineItem(nil), stored.Items...)
	return &tx, nil
}

func (r *TransactionRepository) UpdateStatus(transactionID string, newStatus domain.TransactionStatus, paidAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.txs[transactionID]
	if !ok {
		slog.Warn("status update for unknown transaction", "transaction_id", transactionID)
		return nil
	}

	// Terminal states are sticky: repeated or conflicting webhook
	// deliveries must not rewrite a resolved transaction.
	if stored.Status.Terminal() {
		if stored.Status != newStatus {
			slog.Warn("ignoring status transition out of terminal state",
				"transaction_id", transactionID,
				"current", string(stored.Status),
				"requested", string(newStatus),
			)
		}
		return nil
	}

	if newStatus == stored.Status {
		return nil
	}

	stored.Status = newStatus
	if newStatus == domain.StatusPaid && paidAt != nil {
		at := *paidAt
		stored.PaidAt = &at
	}

	return nil
}
