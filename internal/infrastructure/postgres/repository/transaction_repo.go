package repository

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gabril452/pix-relay/internal/domain"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres/mappers"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) Save(tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		UpdateAll: true,
	}).Create(model).Error
}

func (r *DefaultTransactionRepository) GetByID(transactionID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&model), nil
}

func (r *DefaultTransactionRepository) UpdateStatus(transactionID string, newStatus domain.TransactionStatus, paidAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if newStatus == domain.StatusPaid && paidAt != nil {
		updates["paid_at"] = *paidAt
	}

	// Conditional update keeps terminal states sticky even when webhook
	// deliveries for the same id race each other.
	result := r.DB.Model(&models.TransactionModel{}).
		Where("transaction_id = ? AND status = ?", transactionID, domain.StatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Warn("status update skipped: transaction unknown or already resolved",
			"transaction_id", transactionID,
			"requested", string(newStatus),
		)
	}

	return nil
}
