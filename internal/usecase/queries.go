package usecase

import (
	"errors"

	"github.com/gabril452/pix-relay/internal/domain"
	transactiondto "github.com/gabril452/pix-relay/internal/usecase/dto/transaction"
)

// GetTransactionStatus defaults to pending for unknown transactions, so
// a polling client sees a stable answer before the record lands.
func (uc *DefaultTransactionUsecase) GetTransactionStatus(transactionID string) (*transactiondto.StatusOutput, error) {
	tx, err := uc.TransactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return &transactiondto.StatusOutput{Status: domain.StatusPending}, nil
		}
		return nil, err
	}

	return &transactiondto.StatusOutput{
		Status: tx.Status,
		PaidAt: tx.PaidAt,
	}, nil
}
